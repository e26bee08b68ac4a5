package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lezzetly/lezzetly-backend/internal/api"
	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/middleware"
	"github.com/lezzetly/lezzetly-backend/internal/mocks"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

const testJWTSecret = "integration-test-secret"

const recipesSchema = `
CREATE TABLE recipes (
	id            text PRIMARY KEY,
	created_at    datetime,
	updated_at    datetime,
	deleted_at    datetime,
	slug          text NOT NULL UNIQUE,
	locale_slugs  text,
	title         text,
	description   text,
	tags          text,
	cuisines      text,
	category      text,
	servings      integer,
	prep_minutes  integer,
	cook_minutes  integer,
	total_minutes integer,
	difficulty    text,
	nutrition     text,
	diet_flags    text,
	allergen_flags text,
	ingredients   text,
	steps         text,
	tips          text,
	image_urls    text,
	display_order integer,
	published     boolean,
	user_id       text,
	embedding     text
)`

// completeDraftJSON is a model draft that already satisfies every quality
// range, so the pipeline needs no follow-up expansion calls.
func completeDraftJSON() string {
	steps := make([]map[string]any, 9)
	for i := range steps {
		steps[i] = map[string]any{"order": i + 1, "text": fmt.Sprintf("Preparation step number %d", i+1)}
	}
	ingredients := make([]map[string]any, 11)
	for i := range ingredients {
		ingredients[i] = map[string]any{"name": fmt.Sprintf("ingredient %d", i), "amount": "1 cup", "order": i}
	}
	draft := map[string]any{
		"title":        "Imam Bayildi",
		"description":  strings.TrimSpace(strings.Repeat("Silky roasted eggplant stuffed with slow-cooked onion, tomato and garlic, finished with olive oil. ", 4)),
		"tags":         []string{"eggplant", "vegan", "turkish", "summer", "olive-oil", "stuffed", "vegetable", "dinner", "classic", "mezze", "comfort"},
		"cuisines":     []string{"Turkish"},
		"category":     "main-course",
		"servings":     4,
		"prep_minutes": 20,
		"cook_minutes": 50,
		"nutrition":    map[string]any{"calories": 210, "protein": 4, "carbs": 22, "fat": 13},
		"diet_flags":   []string{"vegan"},
		"ingredients":  ingredients,
		"steps":        steps,
		"tips":         []string{"Use small eggplants", "Rest before serving", "Serve at room temperature"},
	}
	data, _ := json.Marshal(draft)
	return string(data)
}

type testServer struct {
	router *gin.Engine
	images *mocks.MockImageStore
}

func newTestServer(t *testing.T, chatFunc func(ctx context.Context, system, user string, opts service.ChatOptions) (string, error)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec(recipesSchema).Error)

	log := zap.NewNop()
	cat := catalog.Default()
	chat := &mocks.MockChatClient{ChatFunc: chatFunc}
	translator := &mocks.MockTranslator{}
	store := service.NewRecipeService(db)
	images := &mocks.MockImageStore{}

	assembly := service.NewAssemblyService(
		chat,
		translator,
		service.NewExpansionService(chat, log),
		service.NewTagService(cat),
		service.NewAllergenService(cat),
		service.NewQualityPolicy(cat),
		store,
		nil,
		images,
		service.SlugCategoryNormalizer{},
		cat,
		log,
	)

	handler := api.NewRecipeHandler(assembly, store, middleware.NewJWTValidator(testJWTSecret), nil, log)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return &testServer{router: router, images: images}
}

func authToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID.String(),
		"username": "tester",
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func doJSON(ts *testServer, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestRecipeAPI(t *testing.T) {
	draftReply := completeDraftJSON()
	happyChat := func(ctx context.Context, system, user string, opts service.ChatOptions) (string, error) {
		if strings.Contains(system, "recipe developer") {
			return draftReply, nil
		}
		return "", fmt.Errorf("unexpected model call: %s", system)
	}

	t.Run("generation requires authentication", func(t *testing.T) {
		ts := newTestServer(t, happyChat)
		w := doJSON(ts, http.MethodPost, "/api/v1/recipes/generate", "", service.GenerateRequest{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("generate, fetch and search a recipe", func(t *testing.T) {
		ts := newTestServer(t, happyChat)
		token := authToken(t, uuid.New())

		w := doJSON(ts, http.MethodPost, "/api/v1/recipes/generate", token, service.GenerateRequest{Lang: "en", Vegan: true})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created struct {
			Recipe struct {
				ID   uuid.UUID `json:"id"`
				Slug string    `json:"slug"`
			} `json:"recipe"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "imam-bayildi", created.Recipe.Slug)

		w = doJSON(ts, http.MethodGet, "/api/v1/recipes/imam-bayildi", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(ts, http.MethodGet, "/api/v1/recipes?q=eggplant", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var listed struct {
			Recipes []json.RawMessage `json:"recipes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Len(t, listed.Recipes, 1)
	})

	t.Run("provider rate limit maps to 429 with Retry-After", func(t *testing.T) {
		ts := newTestServer(t, func(ctx context.Context, system, user string, opts service.ChatOptions) (string, error) {
			return "", &service.RateLimitError{Provider: "primary", RetryAfter: 30 * time.Second}
		})
		token := authToken(t, uuid.New())

		w := doJSON(ts, http.MethodPost, "/api/v1/recipes/generate", token, service.GenerateRequest{})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30s", w.Header().Get("Retry-After"))
	})

	t.Run("manual submission stores images", func(t *testing.T) {
		ts := newTestServer(t, happyChat)
		token := authToken(t, uuid.New())

		w := doJSON(ts, http.MethodPost, "/api/v1/recipes", token, service.SubmitRequest{
			Title:           "Cacik",
			Description:     "Cold yogurt and cucumber dip.",
			IngredientsText: "2 cups yogurt\n1 cucumber\n2 cloves garlic",
			StepsText:       "Grate the cucumber\nMix everything\nChill before serving",
			Images:          []string{"data:image/png;base64,aGVsbG8="},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Len(t, ts.images.Stored, 1)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		ts := newTestServer(t, happyChat)
		token := authToken(t, uuid.New())

		w := doJSON(ts, http.MethodPost, "/api/v1/recipes", token, service.SubmitRequest{Description: "no title"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown recipe returns 404", func(t *testing.T) {
		ts := newTestServer(t, happyChat)
		w := doJSON(ts, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
