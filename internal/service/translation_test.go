package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

// fakeChat answers every request with the configured reply or error.
type fakeChat struct {
	reply string
	err   error
	calls int

	lastSystem string
	lastUser   string
}

func (f *fakeChat) Chat(ctx context.Context, systemPrompt, userPrompt string, opts ChatOptions) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.reply, f.err
}

// fullTranslationReply builds a provider reply translating text with a
// per-locale prefix, a distinguishable stand-in for real translation.
func fullTranslationReply(t *testing.T, text string) string {
	t.Helper()
	out := map[locale.Code]string{}
	for _, code := range locale.Supported {
		if code == locale.English {
			out[code] = text
			continue
		}
		out[code] = string(code) + ": " + text
	}
	data, err := json.Marshal(out)
	require.NoError(t, err)
	return string(data)
}

func TestTranslateToAllLocales(t *testing.T) {
	t.Run("fills every supported locale", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Lentil Soup")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		label, err := svc.TranslateToAllLocales(context.Background(), "Lentil Soup")
		require.NoError(t, err)
		assert.Len(t, label, len(locale.Supported))
		assert.Equal(t, "Lentil Soup", label[locale.English])
		assert.Equal(t, "tr: Lentil Soup", label[locale.Turkish])
	})

	t.Run("empty input returns complete empty label without a call", func(t *testing.T) {
		chat := &fakeChat{}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		label, err := svc.TranslateToAllLocales(context.Background(), "   ")
		require.NoError(t, err)
		assert.Len(t, label, len(locale.Supported))
		assert.Equal(t, 0, chat.calls)
	})

	t.Run("provider failure returns error and complete empty label", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("boom")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		label, err := svc.TranslateToAllLocales(context.Background(), "Soup")
		assert.Error(t, err)
		assert.Len(t, label, len(locale.Supported))
	})
}

func TestTranslateMissingLocales(t *testing.T) {
	t.Run("fills only the empty locales", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Baklava")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		label, err := svc.TranslateMissingLocales(context.Background(), locale.Label{
			locale.English: "Baklava",
			locale.Turkish: "Fıstıklı Baklava",
		})
		require.NoError(t, err)
		assert.Equal(t, "Fıstıklı Baklava", label[locale.Turkish])
		assert.Equal(t, "fr: Baklava", label[locale.French])
		assert.Len(t, label, len(locale.Supported))
	})

	t.Run("complete label makes no translation call", func(t *testing.T) {
		chat := &fakeChat{}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		full := locale.Label{}
		for _, code := range locale.Supported {
			full[code] = "text " + string(code)
		}
		_, err := svc.TranslateMissingLocales(context.Background(), full)
		require.NoError(t, err)
		assert.Equal(t, 0, chat.calls)
	})

	t.Run("failed translation leaves locales empty", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("unavailable")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		label, err := svc.TranslateMissingLocales(context.Background(), locale.Label{locale.English: "Toast"})
		require.NoError(t, err)
		assert.Equal(t, "Toast", label[locale.English])
		assert.Equal(t, "", label[locale.German])
		assert.Len(t, label, len(locale.Supported))
	})
}

func TestEnsureRealTranslations(t *testing.T) {
	t.Run("repairs all locales holding the same english text", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "A hearty stew")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		in := locale.Label{}
		for _, code := range locale.Supported {
			in[code] = "A hearty stew"
		}

		out := svc.EnsureRealTranslations(context.Background(), in, locale.English)
		assert.Equal(t, "A hearty stew", out[locale.English])
		for _, code := range locale.Supported {
			if code == locale.English {
				continue
			}
			assert.NotEqual(t, "A hearty stew", out[code], "locale %s should differ from the base text", code)
		}
	})

	t.Run("repairs only the duplicated locales", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Garlic bread")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		in := locale.Complete(locale.Label{
			locale.English: "Garlic bread",
			locale.Turkish: "Sarımsaklı ekmek",
			locale.French:  "Garlic bread",
		})

		out := svc.EnsureRealTranslations(context.Background(), in, locale.English)
		assert.Equal(t, "Sarımsaklı ekmek", out[locale.Turkish])
		assert.Equal(t, "fr: Garlic bread", out[locale.French])
	})

	t.Run("fills from base when only base is populated", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Miso soup")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		out := svc.EnsureRealTranslations(context.Background(),
			locale.Label{locale.English: "Miso soup"}, locale.English)
		assert.Equal(t, "zh: Miso soup", out[locale.Chinese])
	})

	t.Run("is idempotent", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Shakshuka")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		once := svc.EnsureRealTranslations(context.Background(),
			locale.Label{locale.English: "Shakshuka"}, locale.English)
		twice := svc.EnsureRealTranslations(context.Background(), locale.Clone(once), locale.English)
		assert.Equal(t, once, twice)
	})

	t.Run("failed translation fills empty locales from the source text", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("unavailable")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		out := svc.EnsureRealTranslations(context.Background(),
			locale.Label{locale.English: "Pancakes"}, locale.English)
		for _, code := range locale.Supported {
			assert.Equal(t, "Pancakes", out[code])
		}
	})

	t.Run("unsupported base falls back to first non-empty locale", func(t *testing.T) {
		chat := &fakeChat{reply: fullTranslationReply(t, "Kumpir")}
		svc := NewTranslationService(chat, nil, zap.NewNop())

		out := svc.EnsureRealTranslations(context.Background(),
			locale.Label{locale.Turkish: "Kumpir"}, locale.Code("xx"))
		assert.Equal(t, "Kumpir", out[locale.Turkish])
		assert.NotEmpty(t, out[locale.German])
	})
}
