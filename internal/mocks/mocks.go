package mocks

import (
	"context"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

// MockChatClient is a function-backed ChatClient for tests.
type MockChatClient struct {
	ChatFunc func(ctx context.Context, systemPrompt, userPrompt string, opts service.ChatOptions) (string, error)
	Calls    int
}

func (m *MockChatClient) Chat(ctx context.Context, systemPrompt, userPrompt string, opts service.ChatOptions) (string, error) {
	m.Calls++
	return m.ChatFunc(ctx, systemPrompt, userPrompt, opts)
}

// MockTranslator completes labels without network calls. By default empty
// locales are filled with a "[code] text" marker so tests can tell filled
// values from originals.
type MockTranslator struct {
	TranslateToAllFunc func(ctx context.Context, text string) (locale.Label, error)
}

func markerTranslation(text string) locale.Label {
	out := locale.Label{}
	for _, code := range locale.Supported {
		if code == locale.Default {
			out[code] = text
			continue
		}
		out[code] = "[" + string(code) + "] " + text
	}
	return out
}

func (m *MockTranslator) TranslateToAllLocales(ctx context.Context, text string) (locale.Label, error) {
	if m.TranslateToAllFunc != nil {
		return m.TranslateToAllFunc(ctx, text)
	}
	return markerTranslation(text), nil
}

func (m *MockTranslator) TranslateMissingLocales(ctx context.Context, label locale.Label) (locale.Label, error) {
	out := locale.Complete(locale.Clone(label))
	source, _, ok := locale.FirstNonEmpty(out)
	if !ok {
		return out, nil
	}
	full, err := m.TranslateToAllLocales(ctx, source)
	if err != nil {
		return out, err
	}
	for _, code := range locale.Supported {
		if out[code] == "" {
			out[code] = full[code]
		}
	}
	return out, nil
}

func (m *MockTranslator) EnsureRealTranslations(ctx context.Context, label locale.Label, base locale.Code) locale.Label {
	out, _ := m.TranslateMissingLocales(ctx, label)
	return out
}

// MockRecipeStore records created recipes in memory.
type MockRecipeStore struct {
	Created  []*model.Recipe
	MaxOrder int
	OrderErr error
}

func (m *MockRecipeStore) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	m.Created = append(m.Created, recipe)
	return recipe, nil
}

func (m *MockRecipeStore) MaxDisplayOrder(ctx context.Context) (int, error) {
	if m.OrderErr != nil {
		return 0, m.OrderErr
	}
	return m.MaxOrder, nil
}

// MockImageStore returns a stable URL per submitted image.
type MockImageStore struct {
	Stored [][]string
}

func (m *MockImageStore) StoreImages(ctx context.Context, recipeID string, images []string) ([]string, error) {
	m.Stored = append(m.Stored, images)
	urls := make([]string, len(images))
	for i := range images {
		urls[i] = "https://images.test/" + recipeID
	}
	return urls, nil
}
