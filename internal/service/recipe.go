package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// RecipeService handles recipe persistence operations.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe persists a new recipe. The recipe's embedding is computed here
// so every write path gets one.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.Embedding = RecipeEmbedding(recipe)
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeBySlug retrieves a recipe by its canonical slug.
func (s *RecipeService) GetRecipeBySlug(ctx context.Context, slug string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes lists published recipes ordered for display. A nil userID lists
// all users' recipes.
func (s *RecipeService) ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	query := s.db.WithContext(ctx).Where("published = ?", true)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Order("display_order ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// SearchRecipes searches for recipes by free text. On Postgres it combines
// semantic similarity over the embedding column with keyword matching over
// the localized JSONB columns; elsewhere it falls back to keyword search.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	var recipes []model.Recipe

	dbQuery := s.db.WithContext(ctx)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)

			subQuery := s.db.Model(&model.Recipe{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(title::text) LIKE ? OR LOWER(description::text) LIKE ? OR LOWER(ingredients::text) LIKE ?",
					like, like, like)

			dbQuery = dbQuery.Joins("JOIN (?) as search ON recipes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?",
				like, like, like)
		}
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// MaxDisplayOrder returns the highest display_order currently stored, or zero
// when the table is empty.
func (s *RecipeService) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max *int
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).
		Select("MAX(display_order)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to read max display order: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
