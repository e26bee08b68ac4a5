package service

import (
	"context"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// ChatClient issues a structured-generation request to an AI provider.
// Implementations must signal rate limiting with a *RateLimitError so callers
// can tell it apart from other failures.
type ChatClient interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string, opts ChatOptions) (string, error)
}

// Translator fills locale gaps in multilingual labels. Calls are treated as
// pure and idempotent, keyed by input text, so results may be cached.
type Translator interface {
	TranslateToAllLocales(ctx context.Context, text string) (locale.Label, error)
	TranslateMissingLocales(ctx context.Context, label locale.Label) (locale.Label, error)
	EnsureRealTranslations(ctx context.Context, label locale.Label, base locale.Code) locale.Label
}

// RecipeStore is the persistence collaborator the assembled draft is handed
// to. Canonical slug uniqueness is enforced here, not in the pipeline.
type RecipeStore interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	MaxDisplayOrder(ctx context.Context) (int, error)
}

// CategoryNormalizer maps a free-form category string to a normalized key.
// The default implementation slugifies; an external taxonomy service can be
// plugged in instead.
type CategoryNormalizer interface {
	NormalizeCategoryKey(raw string) string
}

// ImageStore persists caller-submitted images and returns public URLs.
type ImageStore interface {
	StoreImages(ctx context.Context, recipeID string, images []string) ([]string, error)
}

// SlugCategoryNormalizer is the built-in CategoryNormalizer.
type SlugCategoryNormalizer struct{}

func (SlugCategoryNormalizer) NormalizeCategoryKey(raw string) string {
	return locale.Slugify(raw)
}
