package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

func TestNormalizeIngredients(t *testing.T) {
	t.Run("orders are contiguous from zero", func(t *testing.T) {
		out := NormalizeIngredients([]model.Ingredient{
			{Name: locale.Label{locale.English: "onion"}, Order: 7},
			{Name: locale.Label{}, Order: 2},
			{Name: locale.Label{locale.English: "  "}, Order: 3},
			{Name: locale.Label{locale.English: "garlic"}, Order: 0},
		})
		require.Len(t, out, 2)
		for i, ing := range out {
			assert.Equal(t, i, ing.Order)
		}
		assert.Equal(t, "onion", out[0].Name[locale.English])
		assert.Equal(t, "garlic", out[1].Name[locale.English])
	})

	t.Run("typos in names and amounts are fixed", func(t *testing.T) {
		out := NormalizeIngredients([]model.Ingredient{
			{
				Name:   locale.Label{locale.English: "gluten - free  flour"},
				Amount: locale.Label{locale.English: " 2  cups "},
			},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "gluten-free flour", out[0].Name[locale.English])
		assert.Equal(t, "2 cups", out[0].Amount[locale.English])
	})
}

func TestNormalizeSteps(t *testing.T) {
	t.Run("orders are contiguous from one", func(t *testing.T) {
		out := NormalizeSteps([]model.Step{
			{Order: 9, Text: locale.Label{locale.English: "Chop the onions"}},
			{Order: 1, Text: locale.Label{}},
			{Order: 4, Text: locale.Label{locale.English: "Cook until golden"}},
		})
		require.Len(t, out, 2)
		assert.Equal(t, 1, out[0].Order)
		assert.Equal(t, 2, out[1].Order)
	})

	t.Run("terminal punctuation is locale aware", func(t *testing.T) {
		out := NormalizeSteps([]model.Step{
			{Text: locale.Label{
				locale.English: "Chop the onions",
				locale.Chinese: "切洋葱",
				locale.Hindi:   "प्याज काटें",
			}},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "Chop the onions.", out[0].Text[locale.English])
		assert.Equal(t, "切洋葱。", out[0].Text[locale.Chinese])
		assert.Equal(t, "प्याज काटें।", out[0].Text[locale.Hindi])
	})
}

func TestNormalizeTips(t *testing.T) {
	out := NormalizeTips([]model.Tip{
		{Order: 3, Text: locale.Label{locale.English: "Rest the dough"}},
		{Order: 5, Text: locale.Label{locale.English: ""}},
		{Order: 1, Text: locale.Label{locale.English: "Serve warm."}},
	})
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Order)
	assert.Equal(t, 2, out[1].Order)
	assert.Equal(t, "Rest the dough.", out[0].Text[locale.English])
	assert.Equal(t, "Serve warm.", out[1].Text[locale.English])
}
