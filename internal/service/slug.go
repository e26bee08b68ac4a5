package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

// BuildLocaleSlugs derives a slug per supported locale: an existing override
// wins, then the slugified title in that locale, then the first non-empty
// title value. Locales still empty afterward are filled later with the
// canonical slug by FillEmptyLocaleSlugs.
func BuildLocaleSlugs(existing map[locale.Code]string, title locale.Label) map[locale.Code]string {
	completeTitle := locale.Complete(title)
	fallbackTitle, _, _ := locale.FirstNonEmpty(completeTitle)

	out := make(map[locale.Code]string, len(locale.Supported))
	for _, code := range locale.Supported {
		if v := strings.TrimSpace(existing[code]); v != "" {
			out[code] = locale.Slugify(v)
			continue
		}
		if s := locale.Slugify(completeTitle[code]); s != "" {
			out[code] = s
			continue
		}
		out[code] = locale.Slugify(fallbackTitle)
	}
	return out
}

// PickCanonicalSlug walks the fixed locale preference order and returns the
// first non-empty slug, falling back to the slugified title in that locale.
// The order is independent of the request locale so the canonical identity is
// reproducible. A timestamp slug is the last resort for fully non-latin
// input.
func PickCanonicalSlug(slugs map[locale.Code]string, title locale.Label) string {
	completeTitle := locale.Complete(title)
	for _, code := range locale.PreferenceOrder {
		if s := locale.Slugify(slugs[code]); s != "" {
			return s
		}
		if s := locale.Slugify(completeTitle[code]); s != "" {
			return s
		}
	}
	return fmt.Sprintf("recipe-%d", time.Now().Unix())
}

// FillEmptyLocaleSlugs defaults every empty per-locale slug to the canonical
// slug.
func FillEmptyLocaleSlugs(slugs map[locale.Code]string, canonical string) map[locale.Code]string {
	out := make(map[locale.Code]string, len(locale.Supported))
	for _, code := range locale.Supported {
		if v := strings.TrimSpace(slugs[code]); v != "" {
			out[code] = v
		} else {
			out[code] = canonical
		}
	}
	return out
}
