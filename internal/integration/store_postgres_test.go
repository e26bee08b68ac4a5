package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
	"github.com/lezzetly/lezzetly-backend/internal/service"
	"github.com/lezzetly/lezzetly-backend/internal/testdb"
)

func postgresRecipe(slug string, order int) *model.Recipe {
	return &model.Recipe{
		Slug:  slug,
		Title: model.JSONBLabel{locale.English: "Lentil Soup", locale.Turkish: "Mercimek Çorbası"},
		Description: model.JSONBLabel{
			locale.English: "A warming red lentil soup.",
		},
		Ingredients: model.JSONBIngredients{
			{Name: locale.Label{locale.English: "red lentils"}, Amount: locale.Label{locale.English: "2 cups"}, Order: 0},
		},
		Steps: model.JSONBSteps{
			{Order: 1, Text: locale.Label{locale.English: "Simmer the lentils."}},
		},
		DisplayOrder: order,
		Published:    true,
		UserID:       uuid.New(),
	}
}

func TestRecipeStorePostgres(t *testing.T) {
	td := testdb.Setup(t, "../../migrations")
	svc := service.NewRecipeService(td.DB)
	ctx := context.Background()

	t.Run("create round-trips through jsonb and pgvector columns", func(t *testing.T) {
		created, err := svc.CreateRecipe(ctx, postgresRecipe("lentil-soup", 1))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		got, err := svc.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mercimek Çorbası", got.Title[locale.Turkish])
		require.Len(t, got.Ingredients, 1)
		assert.Equal(t, "red lentils", got.Ingredients[0].Name[locale.English])
		assert.NotEqual(t, []float32{0, 0, 0}, got.Embedding.Slice())
	})

	t.Run("canonical slug uniqueness is enforced by the index", func(t *testing.T) {
		_, err := svc.CreateRecipe(ctx, postgresRecipe("lentil-soup", 2))
		assert.Error(t, err)
	})

	t.Run("semantic search ranks by embedding distance", func(t *testing.T) {
		_, err := svc.CreateRecipe(ctx, postgresRecipe("lentil-soup-spicy", 3))
		require.NoError(t, err)

		found, err := svc.SearchRecipes(ctx, "lentil soup")
		require.NoError(t, err)
		assert.NotEmpty(t, found)
	})

	t.Run("max display order reflects stored rows", func(t *testing.T) {
		max, err := svc.MaxDisplayOrder(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, max, 3)
	})
}
