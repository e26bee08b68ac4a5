package service

import (
	"strings"

	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// AllergenService infers allergen flags from ingredient text and reconciles
// declared diet claims against them. Both operations are pure functions of
// their inputs and the read-only catalog keyword families.
type AllergenService struct {
	catalog *catalog.Catalog
}

// NewAllergenService creates an AllergenService over the given catalog.
func NewAllergenService(c *catalog.Catalog) *AllergenService {
	return &AllergenService{catalog: c}
}

// ingredientText concatenates every locale value of every ingredient's name
// and amount into one folded haystack.
func ingredientText(ingredients []model.Ingredient) string {
	var b strings.Builder
	for _, ing := range ingredients {
		for _, code := range locale.Supported {
			if v := ing.Name[code]; v != "" {
				b.WriteString(v)
				b.WriteByte(' ')
			}
			if v := ing.Amount[code]; v != "" {
				b.WriteString(v)
				b.WriteByte(' ')
			}
		}
	}
	return locale.Fold(b.String())
}

func matchesAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// InferAllergens scans all ingredient text against the nine keyword families
// and returns the matched flags in the fixed model.AllergenFlags order.
// Identical input always yields the identical set.
func (s *AllergenService) InferAllergens(ingredients []model.Ingredient) []model.AllergenFlag {
	haystack := ingredientText(ingredients)
	if haystack == "" {
		return nil
	}

	var flags []model.AllergenFlag
	for _, flag := range model.AllergenFlags {
		if matchesAny(haystack, s.catalog.Allergens[flag]) {
			flags = append(flags, flag)
		}
	}
	return flags
}

// ContainsMeat reports whether the ingredient text matches the meat keyword
// family. Meat is not an allergen; it only participates in reconciliation.
func (s *AllergenService) ContainsMeat(ingredients []model.Ingredient) bool {
	return matchesAny(ingredientText(ingredients), s.catalog.MeatKeywords)
}

// ReconcileDiet filters the declared diet flags down to the claims the
// ingredient evidence supports. It returns nil when no claim stands.
func (s *AllergenService) ReconcileDiet(declared []model.DietFlag, inferred []model.AllergenFlag, ingredients []model.Ingredient) []model.DietFlag {
	has := func(flag model.AllergenFlag) bool {
		for _, f := range inferred {
			if f == flag {
				return true
			}
		}
		return false
	}
	meat := s.ContainsMeat(ingredients)
	animal := meat || has(model.AllergenFish) || has(model.AllergenShellfish)

	var out []model.DietFlag
	for _, flag := range declared {
		if !model.IsValidDietFlag(flag) {
			continue
		}
		switch flag {
		case model.DietVegan:
			if animal || has(model.AllergenDairy) || has(model.AllergenEgg) {
				continue
			}
		case model.DietVegetarian:
			if animal {
				continue
			}
		case model.DietGlutenFree:
			if has(model.AllergenGluten) {
				continue
			}
		case model.DietLactoseFree:
			if has(model.AllergenDairy) {
				continue
			}
		}
		out = append(out, flag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
