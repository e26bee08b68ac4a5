package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lezzetly/lezzetly-backend/internal/middleware"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

// RecipeHandler exposes the generation and submission pipelines over HTTP.
type RecipeHandler struct {
	assembly *service.AssemblyService
	recipes  *service.RecipeService
	auth     middleware.TokenValidator
	limiter  *middleware.RateLimiter
	logger   *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(
	assembly *service.AssemblyService,
	recipes *service.RecipeService,
	auth middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	logger *zap.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		assembly: assembly,
		recipes:  recipes,
		auth:     auth,
		limiter:  limiter,
		logger:   logger,
	}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.SubmitRecipe)
		generate := recipes.Group("/generate", middleware.AuthMiddleware(h.auth))
		if h.limiter != nil {
			generate.Use(h.limiter.RateLimitMiddleware())
		}
		generate.POST("", h.GenerateRecipe)
	}
}

// GenerateRecipe runs the AI generation pipeline for the caller's criteria.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.assembly.GenerateRecipe(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		var rl *service.RateLimitError
		if errors.As(err, &rl) {
			if rl.RetryAfter > 0 {
				c.Header("Retry-After", rl.RetryAfter.Round(time.Second).String())
			}
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "generation providers are rate limited, try again later"})
			return
		}
		h.logger.Error("recipe generation failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe generation is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// SubmitRecipe stores a manually written recipe.
func (h *RecipeHandler) SubmitRecipe(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	recipe, err := h.assembly.SubmitRecipe(c.Request.Context(), req, currentUserID(c))
	if err != nil {
		h.logger.Error("recipe submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// ListRecipes lists published recipes, optionally filtered by a free-text
// search query.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		recipes, err := h.recipes.SearchRecipes(c.Request.Context(), q)
		if err != nil {
			h.logger.Error("recipe search failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search recipes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipes": recipes})
		return
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), nil)
	if err != nil {
		h.logger.Error("recipe listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe fetches one recipe by UUID or canonical slug.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	key := c.Param("id")

	if id, err := uuid.Parse(key); err == nil {
		recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
		if err != nil {
			recipeLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipe": recipe})
		return
	}

	recipe, err := h.recipes.GetRecipeBySlug(c.Request.Context(), key)
	if err != nil {
		recipeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func recipeLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
