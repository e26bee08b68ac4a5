package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

func TestBuildLocaleSlugs(t *testing.T) {
	title := locale.Label{
		locale.English: "Stuffed Peppers",
		locale.Turkish: "Biber Dolması",
	}

	t.Run("slugs come from each locale's title", func(t *testing.T) {
		slugs := BuildLocaleSlugs(nil, title)
		assert.Equal(t, "stuffed-peppers", slugs[locale.English])
		assert.Equal(t, "biber-dolmasi", slugs[locale.Turkish])
	})

	t.Run("missing titles fall back to the first non-empty one", func(t *testing.T) {
		slugs := BuildLocaleSlugs(nil, title)
		assert.Equal(t, "stuffed-peppers", slugs[locale.French])
	})

	t.Run("explicit overrides win", func(t *testing.T) {
		slugs := BuildLocaleSlugs(map[locale.Code]string{locale.English: "peppers-deluxe"}, title)
		assert.Equal(t, "peppers-deluxe", slugs[locale.English])
		assert.Equal(t, "biber-dolmasi", slugs[locale.Turkish])
	})
}

func TestPickCanonicalSlug(t *testing.T) {
	t.Run("walks the fixed preference order", func(t *testing.T) {
		slugs := map[locale.Code]string{
			locale.Turkish: "biber-dolmasi",
			locale.English: "stuffed-peppers",
		}
		assert.Equal(t, "stuffed-peppers", PickCanonicalSlug(slugs, nil))
	})

	t.Run("skips empty entries", func(t *testing.T) {
		slugs := map[locale.Code]string{
			locale.English: "",
			locale.Turkish: "biber-dolmasi",
		}
		assert.Equal(t, "biber-dolmasi", PickCanonicalSlug(slugs, nil))
	})

	t.Run("is deterministic", func(t *testing.T) {
		title := locale.Label{locale.English: "Village Bread"}
		slugs := BuildLocaleSlugs(nil, title)
		first := PickCanonicalSlug(slugs, title)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, PickCanonicalSlug(BuildLocaleSlugs(nil, title), title))
		}
	})

	t.Run("non latin only titles get a generated fallback", func(t *testing.T) {
		title := locale.Label{locale.Russian: "Борщ"}
		slugs := BuildLocaleSlugs(nil, title)
		canonical := PickCanonicalSlug(slugs, title)
		require.NotEmpty(t, canonical)
		assert.True(t, strings.HasPrefix(canonical, "recipe-"))
	})
}

func TestFillEmptyLocaleSlugs(t *testing.T) {
	slugs := map[locale.Code]string{
		locale.English: "stuffed-peppers",
		locale.Russian: "",
	}
	out := FillEmptyLocaleSlugs(slugs, "stuffed-peppers")
	for _, code := range locale.Supported {
		assert.NotEmpty(t, out[code])
	}
	assert.Equal(t, "stuffed-peppers", out[locale.Russian])
}
