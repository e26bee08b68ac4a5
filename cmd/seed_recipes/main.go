package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/config"
	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/database"
	"github.com/lezzetly/lezzetly-backend/internal/service"
)

// seedRequests drives the generation pipeline once per entry to fill an
// empty environment with browsable content.
var seedRequests = []service.GenerateRequest{
	{Lang: "en", Cuisine: "italian", Category: "main-course", Servings: 4, Prompt: "A traditional pasta dish with a modern twist"},
	{Lang: "tr", Cuisine: "turkish", Category: "main-course", Servings: 4, Prompt: "Klasik bir ev yemegi"},
	{Lang: "en", Cuisine: "indian", Category: "main-course", Vegetarian: true, Servings: 4, Prompt: "A fragrant vegetable curry"},
	{Lang: "en", Cuisine: "french", Category: "dessert", Servings: 6, Prompt: "A classic dessert with contemporary presentation"},
	{Lang: "en", Cuisine: "mexican", Category: "street-food", Servings: 2, Prompt: "Authentic street food"},
	{Lang: "en", Cuisine: "japanese", Category: "soup", Servings: 2, MaxMinutes: 30, Prompt: "A light, quick soup"},
	{Lang: "en", Cuisine: "mediterranean", Category: "salad", Vegan: true, Servings: 2, Prompt: "A fresh seasonal salad"},
	{Lang: "en", Cuisine: "middle-eastern", Category: "appetizer", Servings: 4, Prompt: "A mezze-style appetizer"},
	{Lang: "en", Category: "beverage", Servings: 1, MaxMinutes: 10, Prompt: "A refreshing iced drink"},
	{Lang: "en", Cuisine: "american", Category: "comfort-food", Servings: 4, Prompt: "Comfort food with a healthy twist"},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	llm, err := service.NewLLMService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create generation service", zap.Error(err))
	}

	cat := catalog.Default()
	assembly := service.NewAssemblyService(
		llm,
		service.NewTranslationService(llm, redisClient, logger),
		service.NewExpansionService(llm, logger),
		service.NewTagService(cat),
		service.NewAllergenService(cat),
		service.NewQualityPolicy(cat),
		service.NewRecipeService(db),
		service.NewDraftStore(redisClient),
		nil,
		service.SlugCategoryNormalizer{},
		cat,
		logger,
	)

	ctx := context.Background()
	seedUser := uuid.Nil
	created := 0
	for _, req := range seedRequests {
		recipe, err := assembly.GenerateRecipe(ctx, req, seedUser)
		if err != nil {
			logger.Warn("seed generation failed", zap.String("prompt", req.Prompt), zap.Error(err))
			continue
		}
		created++
		logger.Info("seeded recipe", zap.String("slug", recipe.Slug))
	}
	logger.Info("seeding finished", zap.Int("created", created), zap.Int("requested", len(seedRequests)))
}
