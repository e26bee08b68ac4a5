package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

// translationCacheTTL bounds how long a translated label is reused. The call
// is treated as pure and idempotent, keyed by the folded source text.
const translationCacheTTL = 7 * 24 * time.Hour

const translateSystemPrompt = `You are a professional culinary translator for a recipe publishing platform.
Translate the user's text into every one of these locales: en, tr, fr, de, it, pt, ar, ru, zh, hi.
Reply with only a JSON object mapping each locale code to the translation.
Keep ingredient names and cooking terms natural for each locale; do not transliterate when a native term exists.`

// TranslationService fills locale gaps in multilingual labels through the
// generation orchestrator, with an optional Redis cache in front of it.
type TranslationService struct {
	chat   ChatClient
	cache  *redis.Client
	logger *zap.Logger
}

// NewTranslationService creates a TranslationService. cache may be nil.
func NewTranslationService(chat ChatClient, cache *redis.Client, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		chat:   chat,
		cache:  cache,
		logger: logger,
	}
}

// TranslateToAllLocales translates text into every supported locale. Locales
// the provider failed to fill come back empty rather than erroring.
func (s *TranslationService) TranslateToAllLocales(ctx context.Context, text string) (locale.Label, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return locale.Complete(nil), nil
	}

	cacheKey := translationCacheKey(text)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached locale.Label
			if err := json.Unmarshal(data, &cached); err == nil {
				return locale.Complete(cached), nil
			}
		}
	}

	reply, err := s.chat.Chat(ctx, translateSystemPrompt, text, ChatOptions{
		Temperature: 0.2,
		ForceJSON:   true,
	})
	if err != nil {
		return locale.Complete(nil), fmt.Errorf("translation call failed: %w", err)
	}

	var raw map[locale.Code]string
	if err := ExtractObject(reply, &raw); err != nil {
		return locale.Complete(nil), fmt.Errorf("translation reply was not usable: %w", err)
	}
	label := locale.FixTypos(locale.Complete(raw))

	if s.cache != nil {
		if data, err := json.Marshal(label); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, translationCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache translation", zap.Error(err))
			}
		}
	}
	return label, nil
}

// TranslateMissingLocales fills only the empty locales of label, translating
// from the first non-empty value in preference order. On translation failure
// the empty locales stay empty — downstream always gets a complete map.
func (s *TranslationService) TranslateMissingLocales(ctx context.Context, label locale.Label) (locale.Label, error) {
	out := locale.Complete(label)

	source, _, ok := locale.FirstNonEmpty(out)
	if !ok {
		return out, nil
	}

	missing := false
	for _, code := range locale.Supported {
		if strings.TrimSpace(out[code]) == "" {
			missing = true
			break
		}
	}
	if !missing {
		return out, nil
	}

	translated, err := s.TranslateToAllLocales(ctx, source)
	if err != nil {
		s.logger.Warn("leaving locales empty after failed translation", zap.Error(err))
		return out, nil
	}
	for _, code := range locale.Supported {
		if strings.TrimSpace(out[code]) == "" {
			out[code] = translated[code]
		}
	}
	return out, nil
}

// EnsureRealTranslations repairs the three ways a generative model ignores
// locale instructions: every locale holding the same text, some locales
// duplicating the base value instead of translating it, and only the base
// locale being populated. Locales still empty afterward are filled from the
// best available source text. The function is idempotent: running it on its
// own output changes nothing.
//
// A locale that holds text which is neither empty nor a duplicate of the
// base is left alone, even if it might be in the wrong language; there is no
// reliable repair for that case without language detection.
func (s *TranslationService) EnsureRealTranslations(ctx context.Context, label locale.Label, base locale.Code) locale.Label {
	out := locale.Complete(label)

	source, sourceCode, ok := locale.FirstNonEmpty(out)
	if !ok {
		return out
	}
	if !locale.IsSupported(base) || strings.TrimSpace(out[base]) == "" {
		base = sourceCode
		source = strings.TrimSpace(out[sourceCode])
	} else {
		source = strings.TrimSpace(out[base])
	}
	foldedSource := locale.Fold(source)

	// Collect the locales that need a real translation: empty ones and ones
	// that merely duplicate the base text (compared in normalized form).
	needs := make(map[locale.Code]bool)
	for _, code := range locale.Supported {
		if code == base {
			continue
		}
		v := strings.TrimSpace(out[code])
		if v == "" || locale.Fold(v) == foldedSource {
			needs[code] = true
		}
	}
	if len(needs) == 0 {
		return out
	}

	translated, err := s.TranslateToAllLocales(ctx, source)
	if err != nil {
		s.logger.Warn("translation repair failed, filling gaps from source text",
			zap.String("base", string(base)), zap.Error(err))
		for code := range needs {
			if strings.TrimSpace(out[code]) == "" {
				out[code] = source
			}
		}
		return out
	}

	for code := range needs {
		if t := strings.TrimSpace(translated[code]); t != "" {
			out[code] = t
		} else if strings.TrimSpace(out[code]) == "" {
			out[code] = source
		}
	}
	return out
}

func translationCacheKey(text string) string {
	sum := sha256.Sum256([]byte(locale.Fold(text)))
	return "translate:all:" + hex.EncodeToString(sum[:])
}
