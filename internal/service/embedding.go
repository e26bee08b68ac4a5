package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// GenerateEmbedding returns a simple deterministic embedding for the given text.
// This implementation counts the total length, vowels and consonants.
func GenerateEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	length := float32(len(text))
	return pgvector.NewVector([]float32{length, vowels, consonants})
}

// RecipeEmbedding builds the embedding input from a recipe's searchable text
// in its canonical locale: title, description, tags and ingredient names.
func RecipeEmbedding(r *model.Recipe) pgvector.Vector {
	var parts []string
	if title, _, ok := locale.FirstNonEmpty(locale.Label(r.Title)); ok {
		parts = append(parts, title)
	}
	if desc, _, ok := locale.FirstNonEmpty(locale.Label(r.Description)); ok {
		parts = append(parts, desc)
	}
	for _, tag := range r.Tags {
		if text, _, ok := locale.FirstNonEmpty(tag); ok {
			parts = append(parts, text)
		}
	}
	for _, ing := range r.Ingredients {
		if name, _, ok := locale.FirstNonEmpty(ing.Name); ok {
			parts = append(parts, name)
		}
	}
	return GenerateEmbedding(strings.Join(parts, " "))
}
