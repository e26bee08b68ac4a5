package service

import (
	"strings"
	"unicode"

	"github.com/lezzetly/lezzetly-backend/internal/catalog"
)

// CountRange is an inclusive min/max target for a content area.
type CountRange struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the range.
func (r CountRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Quality targets per category family. Beverages need far fewer steps and
// ingredients than food, so they get their own ranges.
var (
	beverageStepRange       = CountRange{Min: 4, Max: 6}
	beverageIngredientRange = CountRange{Min: 2, Max: 8}
	foodStepRange           = CountRange{Min: 8, Max: 12}
	foodIngredientRange     = CountRange{Min: 10, Max: 20}

	// tagRange is the target applied by the tag re-expansion pass.
	tagRange = CountRange{Min: 10, Max: 14}
)

// QualityPolicy returns the required content-count ranges for a category.
type QualityPolicy struct {
	catalog *catalog.Catalog
}

// NewQualityPolicy creates a QualityPolicy over the given catalog.
func NewQualityPolicy(c *catalog.Catalog) *QualityPolicy {
	return &QualityPolicy{catalog: c}
}

// IsBeverage reports whether any whole word of the category is a beverage
// keyword. Matching on words keeps "tea" from firing inside "steak".
func (p *QualityPolicy) IsBeverage(category string) bool {
	words := strings.FieldsFunc(strings.ToLower(category), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		for _, kw := range p.catalog.BeverageKeywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

// StepRange returns the required step-count range for the category.
func (p *QualityPolicy) StepRange(category string) CountRange {
	if p.IsBeverage(category) {
		return beverageStepRange
	}
	return foodStepRange
}

// IngredientRange returns the required ingredient-count range for the category.
func (p *QualityPolicy) IngredientRange(category string) CountRange {
	if p.IsBeverage(category) {
		return beverageIngredientRange
	}
	return foodIngredientRange
}

// TagRange returns the target tag-count range; it does not depend on category.
func (p *QualityPolicy) TagRange() CountRange {
	return tagRange
}
