package service

import (
	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// Content normalization: every list drops entries with no text in any locale
// and gets contiguous order values reassigned in display order — 0-based for
// ingredients, 1-based for steps and tips.

// NormalizeIngredients cleans each ingredient's labels, drops nameless
// entries and reindexes order 0..N-1.
func NormalizeIngredients(ingredients []model.Ingredient) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		name := locale.FixTypos(ing.Name)
		if locale.IsBlank(name) {
			continue
		}
		out = append(out, model.Ingredient{
			Name:   name,
			Amount: locale.FixTypos(ing.Amount),
			Order:  len(out),
		})
	}
	return out
}

// NormalizeSteps cleans and punctuates each step, drops empty entries and
// reindexes order 1..N.
func NormalizeSteps(steps []model.Step) []model.Step {
	out := make([]model.Step, 0, len(steps))
	for _, step := range steps {
		text := locale.Punctuate(locale.FixTypos(step.Text))
		if locale.IsBlank(text) {
			continue
		}
		out = append(out, model.Step{Order: len(out) + 1, Text: text})
	}
	return out
}

// NormalizeTips cleans and punctuates each tip, drops empty entries and
// reindexes order 1..N.
func NormalizeTips(tips []model.Tip) []model.Tip {
	out := make([]model.Tip, 0, len(tips))
	for _, tip := range tips {
		text := locale.Punctuate(locale.FixTypos(tip.Text))
		if locale.IsBlank(text) {
			continue
		}
		out = append(out, model.Tip{Order: len(out) + 1, Text: text})
	}
	return out
}
