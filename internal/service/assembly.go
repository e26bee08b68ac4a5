package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// GenerateRequest is the caller-facing shape for AI recipe generation.
type GenerateRequest struct {
	Lang               string   `json:"lang"`
	Cuisine            string   `json:"cuisine"`
	Vegetarian         bool     `json:"vegetarian"`
	Vegan              bool     `json:"vegan"`
	GlutenFree         bool     `json:"gluten_free"`
	LactoseFree        bool     `json:"lactose_free"`
	Servings           int      `json:"servings"`
	MaxMinutes         int      `json:"max_minutes"`
	IncludeIngredients []string `json:"include_ingredients"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
	Category           string   `json:"category"`
	Prompt             string   `json:"prompt"`
}

// SubmitRequest is the caller-facing shape for manual recipe submission.
// Ingredient, step and tip blocks are line-delimited free text, one item per
// line.
type SubmitRequest struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	IngredientsText string           `json:"ingredients_text"`
	StepsText       string           `json:"steps_text"`
	TipsText        string           `json:"tips_text"`
	Images          []string         `json:"images"`
	Cuisines        []string         `json:"cuisines"`
	Tags            []string         `json:"tags"`
	Category        string           `json:"category"`
	Servings        int              `json:"servings"`
	TotalMinutes    int              `json:"total_minutes"`
	Nutrition       model.Nutrition  `json:"nutrition"`
	Allergens       []string         `json:"allergens"`
	DietFlags       []model.DietFlag `json:"diet_flags"`
}

func (r GenerateRequest) dietFlags() []model.DietFlag {
	var flags []model.DietFlag
	if r.Vegetarian {
		flags = append(flags, model.DietVegetarian)
	}
	if r.Vegan {
		flags = append(flags, model.DietVegan)
	}
	if r.GlutenFree {
		flags = append(flags, model.DietGlutenFree)
	}
	if r.LactoseFree {
		flags = append(flags, model.DietLactoseFree)
	}
	return flags
}

func (r GenerateRequest) baseLocale() locale.Code {
	code := locale.Code(strings.ToLower(strings.TrimSpace(r.Lang)))
	if locale.IsSupported(code) {
		return code
	}
	return locale.Default
}

// draftWire is the structured draft shape requested from the model. Text
// fields accept either a plain string or a per-locale object.
type draftWire struct {
	Title       locale.Text         `json:"title"`
	Description locale.Text         `json:"description"`
	Tags        []locale.Text       `json:"tags"`
	Cuisines    []string            `json:"cuisines"`
	Category    string              `json:"category"`
	Servings    int                 `json:"servings"`
	PrepMin     int                 `json:"prep_minutes"`
	CookMin     int                 `json:"cook_minutes"`
	TotalMin    int                 `json:"total_minutes"`
	Nutrition   model.Nutrition     `json:"nutrition"`
	DietFlags   []string            `json:"diet_flags"`
	Ingredients []ingredientPayload `json:"ingredients"`
	Steps       []stepPayload       `json:"steps"`
	Tips        []locale.Text       `json:"tips"`
}

// AssemblyService runs the full generation and submission pipelines: draft
// generation, normalization, quality expansion, translation completion, diet
// reconciliation and the persistence handoff.
type AssemblyService struct {
	chat       ChatClient
	translator Translator
	expansion  *ExpansionService
	tags       *TagService
	allergens  *AllergenService
	quality    *QualityPolicy
	store      RecipeStore
	drafts     *DraftStore
	images     ImageStore
	category   CategoryNormalizer
	catalog    *catalog.Catalog
	logger     *zap.Logger
}

// NewAssemblyService creates a new AssemblyService instance.
func NewAssemblyService(
	chat ChatClient,
	translator Translator,
	expansion *ExpansionService,
	tags *TagService,
	allergens *AllergenService,
	quality *QualityPolicy,
	store RecipeStore,
	drafts *DraftStore,
	images ImageStore,
	category CategoryNormalizer,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *AssemblyService {
	return &AssemblyService{
		chat:       chat,
		translator: translator,
		expansion:  expansion,
		tags:       tags,
		allergens:  allergens,
		quality:    quality,
		store:      store,
		drafts:     drafts,
		images:     images,
		category:   category,
		catalog:    cat,
		logger:     logger,
	}
}

// GenerateRecipe runs the AI-generation pipeline end to end and returns the
// stored recipe. Rate-limit errors from the provider chain pass through as
// *RateLimitError; any other provider failure comes back wrapped in
// ErrGenerationUnavailable.
func (s *AssemblyService) GenerateRecipe(ctx context.Context, req GenerateRequest, userID uuid.UUID) (*model.Recipe, error) {
	base := req.baseLocale()

	system, user := s.buildGenerationPrompts(req, base)
	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.7, ForceJSON: true})
	if err != nil {
		if IsRateLimited(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	var wire draftWire
	if err := ExtractObject(reply, &wire); err != nil {
		return nil, fmt.Errorf("%w: unusable draft: %v", ErrGenerationUnavailable, err)
	}

	draft := s.assembleDraft(ctx, wire, req, base)
	draft.UserID = userID

	if s.drafts != nil {
		if err := s.drafts.SaveDraft(ctx, draft); err != nil {
			s.logger.Warn("failed to cache draft", zap.Error(err))
		}
	}

	recipe, err := s.persist(ctx, draft)
	if err != nil {
		return nil, err
	}
	if s.drafts != nil && draft.ID != "" {
		if err := s.drafts.DeleteDraft(ctx, draft.ID); err != nil {
			s.logger.Warn("failed to drop cached draft", zap.String("draft_id", draft.ID), zap.Error(err))
		}
	}
	return recipe, nil
}

// SubmitRecipe runs the manual-submission pipeline: line-based parsing of the
// free-text content blocks, per-item translation completion, and the same
// normalization and persistence path as generation. No AI draft generation or
// quality expansion runs here.
func (s *AssemblyService) SubmitRecipe(ctx context.Context, req SubmitRequest, userID uuid.UUID) (*model.Recipe, error) {
	base := locale.Default

	title := s.translator.EnsureRealTranslations(ctx,
		locale.FixTypos(locale.Normalize(locale.Plain(req.Title), locale.Options{Trim: true, Base: base})), base)
	description := s.translator.EnsureRealTranslations(ctx,
		locale.FixTypos(locale.Normalize(locale.Plain(req.Description), locale.Options{Trim: true, Base: base})), base)

	ingredients := NormalizeIngredients(parseIngredientLines(req.IngredientsText, base))
	steps := NormalizeSteps(parseLineItems(req.StepsText, base, func(order int, label locale.Label) model.Step {
		return model.Step{Order: order, Text: label}
	}))
	tips := NormalizeTips(parseLineItems(req.TipsText, base, func(order int, label locale.Label) model.Tip {
		return model.Tip{Order: order, Text: label}
	}))

	for i := range ingredients {
		ingredients[i].Name = s.translator.EnsureRealTranslations(ctx, ingredients[i].Name, base)
		ingredients[i].Amount = s.translator.EnsureRealTranslations(ctx, ingredients[i].Amount, base)
	}
	for i := range steps {
		steps[i].Text = s.translator.EnsureRealTranslations(ctx, steps[i].Text, base)
	}
	tips = s.ensureMinTips(ctx, tips, base)

	tags := make([]locale.Label, 0, len(req.Tags))
	for _, raw := range req.Tags {
		tags = append(tags, locale.FixTypos(locale.Normalize(locale.Plain(raw), locale.Options{Trim: true, Base: base})))
	}
	tags = s.finishTags(ctx, tags, base)

	declared := make([]model.DietFlag, 0, len(req.DietFlags))
	for _, f := range req.DietFlags {
		if model.IsValidDietFlag(f) {
			declared = append(declared, f)
		}
	}

	draft := &RecipeDraft{
		Title:        title,
		Description:  description,
		Tags:         tags,
		Cuisines:     s.tags.CanonicalizeCuisines(req.Cuisines),
		Category:     s.category.NormalizeCategoryKey(req.Category),
		Servings:     req.Servings,
		TotalMinutes: req.TotalMinutes,
		Nutrition:    req.Nutrition.Sanitized(),
		Ingredients:  ingredients,
		Steps:        steps,
		Tips:         tips,
		UserID:       userID,
	}
	s.finishTiming(draft, 0)
	s.finishSlugs(draft)
	s.finishDiet(draft, declared)

	recipe, err := s.persist(ctx, draft)
	if err != nil {
		return nil, err
	}

	if len(req.Images) > 0 && s.images != nil {
		urls, err := s.images.StoreImages(ctx, recipe.ID.String(), req.Images)
		if err != nil {
			s.logger.Warn("failed to store submission images", zap.Error(err))
		} else {
			recipe.ImageURLs = model.JSONBStringArray(urls)
		}
	}
	return recipe, nil
}

// assembleDraft normalizes a raw model draft into a complete, localized
// RecipeDraft, running expansion and translation completion along the way.
func (s *AssemblyService) assembleDraft(ctx context.Context, wire draftWire, req GenerateRequest, base locale.Code) *RecipeDraft {
	opts := locale.Options{Trim: true, Base: base}

	title := s.translator.EnsureRealTranslations(ctx, locale.FixTypos(locale.Normalize(wire.Title, opts)), base)
	description := locale.FixTypos(locale.Normalize(wire.Description, opts))

	rc := RecipeContext{
		Title:     title,
		Cuisines:  s.tags.CanonicalizeCuisines(wire.Cuisines),
		Category:  s.category.NormalizeCategoryKey(firstNonBlank(wire.Category, req.Category)),
		DietFlags: req.dietFlags(),
		Base:      base,
	}

	baseDesc := description[base]
	if expanded, ok := s.expansion.ExpandDescription(ctx, baseDesc, rc); ok {
		description[base] = expanded
	}
	description = s.translator.EnsureRealTranslations(ctx, description, base)
	rc.Description = description

	tags := make([]locale.Label, 0, len(wire.Tags))
	for _, t := range wire.Tags {
		tags = append(tags, locale.FixTypos(locale.Normalize(t, opts)))
	}

	ingredients := make([]model.Ingredient, 0, len(wire.Ingredients))
	for _, ing := range wire.Ingredients {
		ingredients = append(ingredients, model.Ingredient{
			Name:   locale.Normalize(ing.Name, opts),
			Amount: locale.Normalize(ing.Amount, opts),
			Order:  ing.Order,
		})
	}
	ingredients = NormalizeIngredients(ingredients)

	steps := make([]model.Step, 0, len(wire.Steps))
	for _, st := range wire.Steps {
		steps = append(steps, model.Step{Order: st.Order, Text: locale.Normalize(st.Text, opts)})
	}
	steps = NormalizeSteps(steps)

	stepResult := s.expansion.ExpandSteps(ctx, steps, s.quality.StepRange(rc.Category), rc)
	steps = stepResult.Steps
	ingResult := s.expansion.ExpandIngredients(ctx, ingredients, s.quality.IngredientRange(rc.Category), rc)
	ingredients = ingResult.Ingredients

	for i := range ingredients {
		ingredients[i].Name = s.translator.EnsureRealTranslations(ctx, ingredients[i].Name, base)
		ingredients[i].Amount = s.translator.EnsureRealTranslations(ctx, ingredients[i].Amount, base)
	}
	for i := range steps {
		steps[i].Text = s.translator.EnsureRealTranslations(ctx, steps[i].Text, base)
	}

	tips := make([]model.Tip, 0, len(wire.Tips))
	for i, t := range wire.Tips {
		tips = append(tips, model.Tip{Order: i + 1, Text: locale.Normalize(t, opts)})
	}
	tips = s.ensureMinTips(ctx, NormalizeTips(tips), base)

	tags = s.finishTags(ctx, tags, base)
	if tagResult := s.expansion.ExpandTags(ctx, tags, s.quality.TagRange(), rc); tagResult.Accepted {
		tags = s.finishTags(ctx, tagResult.Tags, base)
	}

	declared := req.dietFlags()
	for _, f := range wire.DietFlags {
		flag := model.DietFlag(strings.ToLower(strings.TrimSpace(f)))
		if model.IsValidDietFlag(flag) {
			declared = append(declared, flag)
		}
	}

	nutrition := wire.Nutrition.Sanitized()
	if nutrition.IsZero() {
		if est, err := s.estimateNutrition(ctx, ingredients); err == nil {
			nutrition = est.Sanitized()
		} else {
			s.logger.Warn("nutrition estimation failed", zap.Error(err))
		}
	}

	servings := wire.Servings
	if servings == 0 {
		servings = req.Servings
	}

	draft := &RecipeDraft{
		Title:        title,
		Description:  description,
		Tags:         tags,
		Cuisines:     rc.Cuisines,
		Category:     rc.Category,
		Servings:     servings,
		PrepMinutes:  wire.PrepMin,
		CookMinutes:  wire.CookMin,
		TotalMinutes: wire.TotalMin,
		Nutrition:    nutrition,
		Ingredients:  ingredients,
		Steps:        steps,
		Tips:         tips,
	}
	s.finishTiming(draft, req.MaxMinutes)
	s.finishSlugs(draft)
	s.finishDiet(draft, declared)
	return draft
}

// finishTags runs the shared tag pipeline: translation completion, canonical
// hardening, forbidden-term filtering and dedupe.
func (s *AssemblyService) finishTags(ctx context.Context, tags []locale.Label, base locale.Code) []locale.Label {
	completed := make([]locale.Label, 0, len(tags))
	for _, tag := range tags {
		completed = append(completed, s.translator.EnsureRealTranslations(ctx, tag, base))
	}
	completed = s.tags.HardenTags(completed)
	completed = s.tags.FilterForbidden(completed)
	return s.tags.DedupeTags(completed)
}

// ensureMinTips tops the tip list up to the minimum with translated generic
// fillers, skipping fillers already present.
func (s *AssemblyService) ensureMinTips(ctx context.Context, tips []model.Tip, base locale.Code) []model.Tip {
	for i := range tips {
		tips[i].Text = s.translator.EnsureRealTranslations(ctx, tips[i].Text, base)
	}
	for _, generic := range s.catalog.GenericTips {
		if len(tips) >= catalog.MinTips {
			break
		}
		duplicate := false
		for _, existing := range tips {
			if locale.Fold(existing.Text[locale.Default]) == locale.Fold(generic[locale.Default]) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		tips = append(tips, model.Tip{Order: len(tips) + 1, Text: locale.Clone(generic)})
	}
	return tips
}

// finishTiming computes total time, applies the caller's cap and derives
// difficulty from the final total.
func (s *AssemblyService) finishTiming(draft *RecipeDraft, maxMinutes int) {
	if draft.TotalMinutes == 0 {
		draft.TotalMinutes = draft.PrepMinutes + draft.CookMinutes
	}
	if maxMinutes > 0 && draft.TotalMinutes > maxMinutes {
		draft.TotalMinutes = maxMinutes
	}
	switch {
	case draft.TotalMinutes <= 30:
		draft.Difficulty = model.DifficultyEasy
	case draft.TotalMinutes <= 60:
		draft.Difficulty = model.DifficultyMedium
	default:
		draft.Difficulty = model.DifficultyHard
	}
}

// finishSlugs builds the per-locale slug set and the canonical slug from the
// final title.
func (s *AssemblyService) finishSlugs(draft *RecipeDraft) {
	slugs := BuildLocaleSlugs(draft.LocaleSlugs, draft.Title)
	canonical := PickCanonicalSlug(slugs, draft.Title)
	draft.LocaleSlugs = FillEmptyLocaleSlugs(slugs, canonical)
	draft.Slug = canonical
}

// finishDiet infers allergens from the final ingredient list and reconciles
// the declared diet flags against them.
func (s *AssemblyService) finishDiet(draft *RecipeDraft, declared []model.DietFlag) {
	inferred := s.allergens.InferAllergens(draft.Ingredients)
	draft.AllergenFlags = inferred
	draft.DietFlags = s.allergens.ReconcileDiet(declared, inferred, draft.Ingredients)
}

// persist assigns the next display order and hands the draft to the store.
func (s *AssemblyService) persist(ctx context.Context, draft *RecipeDraft) (*model.Recipe, error) {
	maxOrder, err := s.store.MaxDisplayOrder(ctx)
	if err != nil {
		s.logger.Warn("failed to read max display order, defaulting", zap.Error(err))
		draft.DisplayOrder = 1
	} else {
		draft.DisplayOrder = maxOrder + 1
	}
	recipe, err := s.store.CreateRecipe(ctx, draft.ToRecipe())
	if err != nil {
		return nil, fmt.Errorf("failed to persist recipe: %w", err)
	}
	return recipe, nil
}

// buildGenerationPrompts turns caller criteria into the initial draft prompts.
func (s *AssemblyService) buildGenerationPrompts(req GenerateRequest, base locale.Code) (string, string) {
	system := fmt.Sprintf(`You are a professional recipe developer. Create one complete recipe and reply with only a JSON object with fields:
title, description, tags (array), cuisines (array), category, servings, prep_minutes, cook_minutes, total_minutes,
nutrition ({calories, protein, carbs, fat, fiber, sodium}), diet_flags (array),
ingredients (array of {name, amount, order} starting at order 0),
steps (array of {order, text} starting at order 1),
tips (array of strings).
Write all text in the %q locale only. Leave other languages out.`, base)

	var b strings.Builder
	b.WriteString("Create a recipe")
	if req.Cuisine != "" {
		fmt.Fprintf(&b, " in %s cuisine", req.Cuisine)
	}
	if req.Category != "" {
		fmt.Fprintf(&b, ", category %s", req.Category)
	}
	if req.Servings > 0 {
		fmt.Fprintf(&b, ", for %d servings", req.Servings)
	}
	if req.MaxMinutes > 0 {
		fmt.Fprintf(&b, ", ready in at most %d minutes", req.MaxMinutes)
	}
	if flags := req.dietFlags(); len(flags) > 0 {
		parts := make([]string, len(flags))
		for i, f := range flags {
			parts[i] = string(f)
		}
		fmt.Fprintf(&b, ". It must be %s", strings.Join(parts, " and "))
	}
	if len(req.IncludeIngredients) > 0 {
		fmt.Fprintf(&b, ". Use these ingredients: %s", strings.Join(req.IncludeIngredients, ", "))
	}
	if len(req.ExcludeIngredients) > 0 {
		fmt.Fprintf(&b, ". Do not use: %s", strings.Join(req.ExcludeIngredients, ", "))
	}
	if req.Prompt != "" {
		fmt.Fprintf(&b, ". %s", req.Prompt)
	}
	b.WriteString(".")
	return system, b.String()
}

// estimateNutrition asks the model for an approximate macro breakdown of the
// final ingredient list.
func (s *AssemblyService) estimateNutrition(ctx context.Context, ingredients []model.Ingredient) (model.Nutrition, error) {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		name, _, ok := locale.FirstNonEmpty(ing.Name)
		if !ok {
			continue
		}
		if amount, _, ok := locale.FirstNonEmpty(ing.Amount); ok {
			name = amount + " " + name
		}
		lines = append(lines, name)
	}
	if len(lines) == 0 {
		return model.Nutrition{}, fmt.Errorf("no ingredients to estimate from")
	}

	system := `You are a nutrition expert. Respond only with JSON like {"calories":0,"protein":0,"carbs":0,"fat":0,"fiber":0,"sodium":0}. Values are per serving.`
	user := "Provide an approximate macronutrient breakdown for:\n" + strings.Join(lines, "\n")

	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.2, ForceJSON: true})
	if err != nil {
		return model.Nutrition{}, err
	}
	var n model.Nutrition
	if err := ExtractObject(reply, &n); err != nil {
		return model.Nutrition{}, err
	}
	return n, nil
}

// parseIngredientLines parses line-delimited "amount name" or bare-name
// ingredient text. A leading quantity token (digit-initial) becomes the
// amount.
func parseIngredientLines(text string, base locale.Code) []model.Ingredient {
	var out []model.Ingredient
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, amount := line, ""
		if fields := strings.Fields(line); len(fields) > 1 && startsWithDigit(fields[0]) {
			split := 1
			if len(fields) > 2 && isUnitWord(fields[1]) {
				split = 2
			}
			amount = strings.Join(fields[:split], " ")
			name = strings.Join(fields[split:], " ")
		}
		out = append(out, model.Ingredient{
			Name:   locale.FixTypos(locale.Normalize(locale.Plain(name), locale.Options{Trim: true, Base: base})),
			Amount: locale.FixTypos(locale.Normalize(locale.Plain(amount), locale.Options{Trim: true, Base: base})),
			Order:  len(out),
		})
	}
	return out
}

// parseLineItems parses line-delimited text into ordered items starting at 1.
func parseLineItems[T any](text string, base locale.Code, build func(order int, label locale.Label) T) []T {
	var out []T
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label := locale.FixTypos(locale.Normalize(locale.Plain(line), locale.Options{Trim: true, Base: base}))
		out = append(out, build(len(out)+1, label))
	}
	return out
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// isUnitWord recognizes the common measurement words that follow a leading
// quantity on an ingredient line.
func isUnitWord(s string) bool {
	switch strings.ToLower(strings.TrimRight(s, ".")) {
	case "g", "kg", "mg", "ml", "l", "dl", "cl", "oz", "lb", "lbs",
		"cup", "cups", "tbsp", "tsp", "tablespoon", "tablespoons",
		"teaspoon", "teaspoons", "clove", "cloves", "slice", "slices",
		"pinch", "gram", "grams", "adet", "su", "yemek", "tatli", "cay":
		return true
	}
	return false
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
