// Package catalog holds the process-wide canonical dictionaries: the tag
// canon, forbidden tag terms, cuisine aliases, allergen keyword families,
// beverage category keywords and the generic filler tips. A Catalog is built
// once at startup and shared read-only between requests; nothing in it is
// mutated after Default returns.
package catalog

import (
	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// Catalog is the set of canonical lookup tables the pipeline depends on.
type Catalog struct {
	// Tags maps a canonical tag key to its full multilingual entry.
	Tags map[string]locale.Label
	// ForbiddenTags are normalized terms a tag may never carry in any locale.
	ForbiddenTags map[string]struct{}
	// CuisineAliases maps folded spelling/locale variants to a canonical id.
	CuisineAliases map[string]string
	// Allergens maps each allergen flag to its folded keyword family.
	Allergens map[model.AllergenFlag][]string
	// MeatKeywords is the folded keyword family used for diet reconciliation.
	MeatKeywords []string
	// BeverageKeywords mark categories that get the narrower quality ranges.
	BeverageKeywords []string
	// GenericTips are appended when an AI draft has fewer than MinTips tips.
	GenericTips []locale.Label
}

// MinTips is the minimum tip count for AI-generated drafts.
const MinTips = 3

// Default builds the catalog shipped with the service.
func Default() *Catalog {
	return &Catalog{
		Tags:             canonicalTags(),
		ForbiddenTags:    forbiddenTags(),
		CuisineAliases:   cuisineAliases(),
		Allergens:        allergenKeywords(),
		MeatKeywords:     meatKeywords(),
		BeverageKeywords: beverageKeywords(),
		GenericTips:      genericTips(),
	}
}
