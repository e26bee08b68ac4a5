package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lezzetly/lezzetly-backend/config"
	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/database"
	"github.com/lezzetly/lezzetly-backend/internal/middleware"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

// SetupAPI wires services and handlers onto the router.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, images service.ImageStore, logger *zap.Logger) error {
	llm, err := service.NewLLMService(cfg, logger)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	translator := service.NewTranslationService(llm, redisClient, logger)
	expansion := service.NewExpansionService(llm, logger)
	tags := service.NewTagService(cat)
	allergens := service.NewAllergenService(cat)
	quality := service.NewQualityPolicy(cat)
	recipes := service.NewRecipeService(db)
	drafts := service.NewDraftStore(redisClient)

	assembly := service.NewAssemblyService(
		llm, translator, expansion, tags, allergens, quality,
		recipes, drafts, images, service.SlugCategoryNormalizer{}, cat, logger,
	)

	validator := middleware.NewJWTValidator(cfg.JWTSecret)
	limiter := middleware.NewGenerationRateLimiter(redisClient)

	v1 := router.Group("/api/v1")
	NewRecipeHandler(assembly, recipes, validator, limiter, logger).RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
			return
		}
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
