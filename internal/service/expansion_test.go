package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

func shortSteps(n int) []model.Step {
	out := make([]model.Step, n)
	for i := range out {
		out[i] = model.Step{Order: i + 1, Text: locale.Label{locale.English: fmt.Sprintf("Step %d.", i+1)}}
	}
	return out
}

func stepReply(t *testing.T, n int) string {
	t.Helper()
	type wireStep struct {
		Order int    `json:"order"`
		Text  string `json:"text"`
	}
	steps := make([]wireStep, n)
	for i := range steps {
		steps[i] = wireStep{Order: i + 1, Text: fmt.Sprintf("Expanded step %d", i+1)}
	}
	data, err := json.Marshal(steps)
	require.NoError(t, err)
	return string(data)
}

func testContext() RecipeContext {
	return RecipeContext{
		Title:    locale.Label{locale.English: "Lentil Soup"},
		Cuisines: []string{"turkish"},
		Category: "main-course",
		Base:     locale.English,
	}
}

func TestExpandSteps(t *testing.T) {
	rng := CountRange{Min: 8, Max: 12}

	t.Run("count at minimum is a no-op", func(t *testing.T) {
		chat := &fakeChat{}
		svc := NewExpansionService(chat, zap.NewNop())

		in := shortSteps(8)
		result := svc.ExpandSteps(context.Background(), in, rng, testContext())
		assert.True(t, result.Accepted)
		assert.Equal(t, in, result.Steps)
		assert.Equal(t, 0, chat.calls)
	})

	t.Run("short draft is expanded into the range", func(t *testing.T) {
		chat := &fakeChat{reply: stepReply(t, 10)}
		svc := NewExpansionService(chat, zap.NewNop())

		result := svc.ExpandSteps(context.Background(), shortSteps(3), rng, testContext())
		require.True(t, result.Accepted)
		assert.Equal(t, 1, chat.calls)
		assert.GreaterOrEqual(t, len(result.Steps), rng.Min)
		assert.LessOrEqual(t, len(result.Steps), rng.Max)
		for i, step := range result.Steps {
			assert.Equal(t, i+1, step.Order)
		}
	})

	t.Run("over-produced reply is truncated to the maximum", func(t *testing.T) {
		chat := &fakeChat{reply: stepReply(t, 20)}
		svc := NewExpansionService(chat, zap.NewNop())

		result := svc.ExpandSteps(context.Background(), shortSteps(3), rng, testContext())
		require.True(t, result.Accepted)
		assert.Len(t, result.Steps, rng.Max)
	})

	t.Run("provider failure rolls back to the original input", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("unavailable")}
		svc := NewExpansionService(chat, zap.NewNop())

		in := shortSteps(3)
		result := svc.ExpandSteps(context.Background(), in, rng, testContext())
		assert.False(t, result.Accepted)
		assert.Equal(t, in, result.Steps)
	})

	t.Run("malformed reply rolls back", func(t *testing.T) {
		chat := &fakeChat{reply: "I could not produce the steps, sorry."}
		svc := NewExpansionService(chat, zap.NewNop())

		in := shortSteps(3)
		result := svc.ExpandSteps(context.Background(), in, rng, testContext())
		assert.False(t, result.Accepted)
		assert.Equal(t, in, result.Steps)
	})

	t.Run("reply still under the minimum rolls back", func(t *testing.T) {
		chat := &fakeChat{reply: stepReply(t, 5)}
		svc := NewExpansionService(chat, zap.NewNop())

		in := shortSteps(3)
		result := svc.ExpandSteps(context.Background(), in, rng, testContext())
		assert.False(t, result.Accepted)
		assert.Equal(t, in, result.Steps)
	})
}

func TestExpandIngredients(t *testing.T) {
	rng := CountRange{Min: 10, Max: 20}

	t.Run("short list is expanded", func(t *testing.T) {
		type wireIngredient struct {
			Name   string `json:"name"`
			Amount string `json:"amount"`
			Order  int    `json:"order"`
		}
		items := make([]wireIngredient, 12)
		for i := range items {
			items[i] = wireIngredient{Name: fmt.Sprintf("ingredient %d", i), Amount: "1 cup", Order: i}
		}
		data, err := json.Marshal(items)
		require.NoError(t, err)

		chat := &fakeChat{reply: string(data)}
		svc := NewExpansionService(chat, zap.NewNop())

		in := []model.Ingredient{{Name: locale.Label{locale.English: "lentils"}, Order: 0}}
		result := svc.ExpandIngredients(context.Background(), in, rng, testContext())
		require.True(t, result.Accepted)
		assert.Len(t, result.Ingredients, 12)
		for i, ing := range result.Ingredients {
			assert.Equal(t, i, ing.Order)
		}
	})

	t.Run("rollback keeps the original list", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("unavailable")}
		svc := NewExpansionService(chat, zap.NewNop())

		in := []model.Ingredient{{Name: locale.Label{locale.English: "lentils"}, Order: 0}}
		result := svc.ExpandIngredients(context.Background(), in, rng, testContext())
		assert.False(t, result.Accepted)
		assert.Equal(t, in, result.Ingredients)
	})
}

func TestExpandTags(t *testing.T) {
	rng := CountRange{Min: 10, Max: 14}

	t.Run("short list is expanded and blanks dropped", func(t *testing.T) {
		tags := []string{"soup", "healthy", "vegan", "turkish", "winter", "  ", "lentil", "comfort", "easy", "budget", "hearty"}
		data, err := json.Marshal(tags)
		require.NoError(t, err)

		chat := &fakeChat{reply: string(data)}
		svc := NewExpansionService(chat, zap.NewNop())

		result := svc.ExpandTags(context.Background(), []locale.Label{{locale.English: "soup"}}, rng, testContext())
		require.True(t, result.Accepted)
		assert.Len(t, result.Tags, 10)
	})

	t.Run("rollback keeps the original tags", func(t *testing.T) {
		chat := &fakeChat{reply: `["only", "three", "tags"]`}
		svc := NewExpansionService(chat, zap.NewNop())

		in := []locale.Label{{locale.English: "soup"}}
		result := svc.ExpandTags(context.Background(), in, rng, testContext())
		assert.False(t, result.Accepted)
		assert.Equal(t, in, result.Tags)
	})
}

func TestExpandDescription(t *testing.T) {
	longText := ""
	for len(longText) < 400 {
		longText += "A warming red lentil soup with cumin and lemon, simmered slowly. "
	}

	t.Run("long enough description is untouched", func(t *testing.T) {
		chat := &fakeChat{}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), longText, testContext())
		assert.True(t, ok)
		assert.Equal(t, 0, chat.calls)
		assert.NotEmpty(t, out)
	})

	t.Run("short description is rewritten", func(t *testing.T) {
		chat := &fakeChat{reply: longText}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), "A soup.", testContext())
		assert.True(t, ok)
		assert.GreaterOrEqual(t, len(out), descriptionMinLen)
		assert.LessOrEqual(t, len(out), descriptionMaxLen+len("…"))
	})

	t.Run("failed rewrite keeps the original", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("unavailable")}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), "A soup.", testContext())
		assert.False(t, ok)
		assert.Equal(t, "A soup.", out)
	})

	t.Run("too short rewrite keeps the original", func(t *testing.T) {
		chat := &fakeChat{reply: "Still short."}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), "A soup.", testContext())
		assert.False(t, ok)
		assert.Equal(t, "A soup.", out)
	})

	t.Run("cyrillic length is counted in runes, not bytes", func(t *testing.T) {
		// 200 runes but well over 300 bytes, so a byte count would wrongly
		// pass the minimum and skip the rewrite.
		short := strings.Repeat("суп красный ", 16) + "чечевица"
		require.Equal(t, 200, utf8.RuneCountInString(short))
		require.Greater(t, len(short), descriptionMinLen)

		reply := strings.Repeat("Согревающий суп из красной чечевицы с тмином и лимоном. ", 7)
		require.GreaterOrEqual(t, utf8.RuneCountInString(reply), descriptionMinLen)

		chat := &fakeChat{reply: reply}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), short, testContext())
		assert.True(t, ok)
		assert.Equal(t, 1, chat.calls)
		assert.GreaterOrEqual(t, utf8.RuneCountInString(out), descriptionMinLen)
	})

	t.Run("truncation never splits a multi-byte rune", func(t *testing.T) {
		// No spaces, so the cut lands exactly at the rune limit.
		reply := strings.Repeat("这道汤以红扁豆为主料", 70)
		require.Greater(t, utf8.RuneCountInString(reply), descriptionMaxLen)

		chat := &fakeChat{reply: reply}
		svc := NewExpansionService(chat, zap.NewNop())

		out, ok := svc.ExpandDescription(context.Background(), "短", testContext())
		assert.True(t, ok)
		assert.True(t, utf8.ValidString(out))
		assert.LessOrEqual(t, utf8.RuneCountInString(out), descriptionMaxLen+1)
	})
}
