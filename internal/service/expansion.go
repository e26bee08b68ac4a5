package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// RecipeContext is the read-only context handed to expansion prompts so the
// model keeps the new content consistent with the rest of the draft.
type RecipeContext struct {
	Title       locale.Label
	Description locale.Label
	Cuisines    []string
	Category    string
	DietFlags   []model.DietFlag
	Base        locale.Code
}

func (rc RecipeContext) promptContext() string {
	title, _, _ := locale.FirstNonEmpty(rc.Title)
	desc, _, _ := locale.FirstNonEmpty(rc.Description)
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe: %s\n", title)
	if desc != "" {
		fmt.Fprintf(&b, "Description: %s\n", desc)
	}
	if len(rc.Cuisines) > 0 {
		fmt.Fprintf(&b, "Cuisine: %s\n", strings.Join(rc.Cuisines, ", "))
	}
	if rc.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", rc.Category)
	}
	if len(rc.DietFlags) > 0 {
		flags := make([]string, len(rc.DietFlags))
		for i, f := range rc.DietFlags {
			flags[i] = string(f)
		}
		fmt.Fprintf(&b, "Dietary: %s\n", strings.Join(flags, ", "))
	}
	return b.String()
}

// Expansion results make the accept-or-rollback contract explicit: Accepted
// is false when the follow-up generation failed validation and the caller got
// its original input back, byte for byte. Expansion never errors; it is
// best-effort by design of the overall request flow.
type StepExpansion struct {
	Accepted bool
	Steps    []model.Step
}

type IngredientExpansion struct {
	Accepted    bool
	Ingredients []model.Ingredient
}

type TagExpansion struct {
	Accepted bool
	Tags     []locale.Label
}

// ExpansionService tops up under-filled content areas through follow-up
// generation requests. Each call is a fresh, stateless request carrying only
// the current content and target range.
type ExpansionService struct {
	chat   ChatClient
	logger *zap.Logger
}

// NewExpansionService creates an ExpansionService.
func NewExpansionService(chat ChatClient, logger *zap.Logger) *ExpansionService {
	return &ExpansionService{chat: chat, logger: logger}
}

type stepPayload struct {
	Order int         `json:"order"`
	Text  locale.Text `json:"text"`
}

type ingredientPayload struct {
	Name   locale.Text `json:"name"`
	Amount locale.Text `json:"amount"`
	Order  int         `json:"order"`
}

// ExpandSteps grows the step list into the required range. If the current
// count already meets the minimum, or the expansion reply fails validation,
// the input is returned unchanged.
func (s *ExpansionService) ExpandSteps(ctx context.Context, steps []model.Step, rng CountRange, rc RecipeContext) StepExpansion {
	if len(steps) >= rng.Min {
		return StepExpansion{Accepted: true, Steps: steps}
	}

	current := make([]string, len(steps))
	for i, st := range steps {
		text, _, _ := locale.FirstNonEmpty(st.Text)
		current[i] = text
	}
	currentJSON, _ := json.Marshal(current)

	system := fmt.Sprintf(
		`You are a recipe editor. Expand the given preparation steps so the recipe has between %d and %d steps.
Keep the existing steps' meaning, split or add detail where needed, and keep them in cooking order.
Reply with only a JSON array of objects: [{"order": 1, "text": "..."}]. Write the text in the %q locale only.`,
		rng.Min, rng.Max, rc.Base)
	user := rc.promptContext() + "Current steps:\n" + string(currentJSON)

	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.4, ForceJSON: false})
	if err != nil {
		s.logger.Warn("step expansion request failed, keeping original steps", zap.Error(err))
		return StepExpansion{Accepted: false, Steps: steps}
	}

	var payload []stepPayload
	if err := ExtractArray(reply, &payload); err != nil {
		s.logger.Warn("step expansion reply unusable, keeping original steps", zap.Error(err))
		return StepExpansion{Accepted: false, Steps: steps}
	}

	expanded := make([]model.Step, 0, len(payload))
	for _, p := range payload {
		expanded = append(expanded, model.Step{
			Order: p.Order,
			Text:  locale.Normalize(p.Text, locale.Options{Trim: true, Base: rc.Base}),
		})
	}
	expanded = NormalizeSteps(expanded)
	if len(expanded) > rng.Max {
		expanded = expanded[:rng.Max]
	}
	if len(expanded) < rng.Min {
		s.logger.Warn("step expansion came back short, keeping original steps",
			zap.Int("got", len(expanded)), zap.Int("want_min", rng.Min))
		return StepExpansion{Accepted: false, Steps: steps}
	}
	return StepExpansion{Accepted: true, Steps: expanded}
}

// ExpandIngredients grows the ingredient list into the required range, with
// the same accept-or-rollback contract as ExpandSteps.
func (s *ExpansionService) ExpandIngredients(ctx context.Context, ingredients []model.Ingredient, rng CountRange, rc RecipeContext) IngredientExpansion {
	if len(ingredients) >= rng.Min {
		return IngredientExpansion{Accepted: true, Ingredients: ingredients}
	}

	type currentItem struct {
		Name   string `json:"name"`
		Amount string `json:"amount,omitempty"`
	}
	current := make([]currentItem, len(ingredients))
	for i, ing := range ingredients {
		name, _, _ := locale.FirstNonEmpty(ing.Name)
		amount, _, _ := locale.FirstNonEmpty(ing.Amount)
		current[i] = currentItem{Name: name, Amount: amount}
	}
	currentJSON, _ := json.Marshal(current)

	system := fmt.Sprintf(
		`You are a recipe editor. Complete the given ingredient list so the recipe has between %d and %d ingredients, including seasoning and garnish.
Keep every existing ingredient. Reply with only a JSON array of objects: [{"name": "...", "amount": "...", "order": 0}]. Write the text in the %q locale only.`,
		rng.Min, rng.Max, rc.Base)
	user := rc.promptContext() + "Current ingredients:\n" + string(currentJSON)

	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.4, ForceJSON: false})
	if err != nil {
		s.logger.Warn("ingredient expansion request failed, keeping original ingredients", zap.Error(err))
		return IngredientExpansion{Accepted: false, Ingredients: ingredients}
	}

	var payload []ingredientPayload
	if err := ExtractArray(reply, &payload); err != nil {
		s.logger.Warn("ingredient expansion reply unusable, keeping original ingredients", zap.Error(err))
		return IngredientExpansion{Accepted: false, Ingredients: ingredients}
	}

	expanded := make([]model.Ingredient, 0, len(payload))
	for _, p := range payload {
		expanded = append(expanded, model.Ingredient{
			Name:   locale.Normalize(p.Name, locale.Options{Trim: true, Base: rc.Base}),
			Amount: locale.Normalize(p.Amount, locale.Options{Trim: true, Base: rc.Base}),
			Order:  p.Order,
		})
	}
	expanded = NormalizeIngredients(expanded)
	if len(expanded) > rng.Max {
		expanded = expanded[:rng.Max]
	}
	if len(expanded) < rng.Min {
		s.logger.Warn("ingredient expansion came back short, keeping original ingredients",
			zap.Int("got", len(expanded)), zap.Int("want_min", rng.Min))
		return IngredientExpansion{Accepted: false, Ingredients: ingredients}
	}
	return IngredientExpansion{Accepted: true, Ingredients: expanded}
}

// ExpandTags grows the tag list into the required range, with the same
// accept-or-rollback contract. Returned tags carry text only in the base
// locale; translation completion runs afterwards.
func (s *ExpansionService) ExpandTags(ctx context.Context, tags []locale.Label, rng CountRange, rc RecipeContext) TagExpansion {
	if len(tags) >= rng.Min {
		return TagExpansion{Accepted: true, Tags: tags}
	}

	current := make([]string, len(tags))
	for i, tag := range tags {
		text, _, _ := locale.FirstNonEmpty(tag)
		current[i] = text
	}
	currentJSON, _ := json.Marshal(current)

	system := fmt.Sprintf(
		`You are a recipe editor. Extend the given tag list to between %d and %d short, specific tags describing the dish (technique, occasion, key ingredient, season).
Keep every existing tag. Reply with only a JSON array of strings. Write the tags in the %q locale only.`,
		rng.Min, rng.Max, rc.Base)
	user := rc.promptContext() + "Current tags:\n" + string(currentJSON)

	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.5, ForceJSON: false})
	if err != nil {
		s.logger.Warn("tag expansion request failed, keeping original tags", zap.Error(err))
		return TagExpansion{Accepted: false, Tags: tags}
	}

	var payload []string
	if err := ExtractArray(reply, &payload); err != nil {
		s.logger.Warn("tag expansion reply unusable, keeping original tags", zap.Error(err))
		return TagExpansion{Accepted: false, Tags: tags}
	}

	expanded := make([]locale.Label, 0, len(payload))
	for _, text := range payload {
		label := locale.FixTypos(locale.Normalize(locale.Plain(text), locale.Options{Trim: true, Base: rc.Base}))
		if locale.IsBlank(label) {
			continue
		}
		expanded = append(expanded, label)
	}
	if len(expanded) > rng.Max {
		expanded = expanded[:rng.Max]
	}
	if len(expanded) < rng.Min {
		s.logger.Warn("tag expansion came back short, keeping original tags",
			zap.Int("got", len(expanded)), zap.Int("want_min", rng.Min))
		return TagExpansion{Accepted: false, Tags: tags}
	}
	return TagExpansion{Accepted: true, Tags: expanded}
}

// Description length targets enforced by ExpandDescription, counted in
// runes so non-Latin locales are measured the same as Latin ones.
const (
	descriptionMinLen = 300
	descriptionMaxLen = 600
)

// ExpandDescription grows a too-short description toward the 300-600
// character target, in the base locale only. The boolean reports whether the
// expansion was accepted; on failure the original text comes back.
func (s *ExpansionService) ExpandDescription(ctx context.Context, description string, rc RecipeContext) (string, bool) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) >= descriptionMinLen {
		return description, true
	}

	system := fmt.Sprintf(
		`You are a recipe editor. Rewrite the given recipe description to between %d and %d characters: appetizing, concrete, no marketing filler.
Reply with only the rewritten description as plain text, in the %q locale.`,
		descriptionMinLen, descriptionMaxLen, rc.Base)
	user := rc.promptContext() + "Current description:\n" + description

	reply, err := s.chat.Chat(ctx, system, user, ChatOptions{Temperature: 0.5})
	if err != nil {
		s.logger.Warn("description expansion failed, keeping original", zap.Error(err))
		return description, false
	}
	rewritten := strings.TrimSpace(reply)
	if utf8.RuneCountInString(rewritten) < descriptionMinLen {
		return description, false
	}
	if utf8.RuneCountInString(rewritten) > descriptionMaxLen {
		rewritten = truncateAtWord(rewritten, descriptionMaxLen)
	}
	return rewritten, true
}

// truncateAtWord cuts s at the last word boundary before limit runes,
// never splitting a rune.
func truncateAtWord(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:") + "…"
}
