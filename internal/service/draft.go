package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
	"github.com/lezzetly/lezzetly-backend/internal/model"
)

// draftTTL bounds how long an assembled draft survives in Redis before the
// persistence handoff.
const draftTTL = 24 * time.Hour

// RecipeDraft is the fully assembled, fully localized draft handed to the
// persistence collaborator. It mirrors the stored recipe minus storage
// concerns.
type RecipeDraft struct {
	ID          string                 `json:"id"`
	Slug        string                 `json:"slug"`
	LocaleSlugs map[locale.Code]string `json:"locale_slugs"`

	Title       locale.Label `json:"title"`
	Description locale.Label `json:"description"`

	Tags     []locale.Label `json:"tags"`
	Cuisines []string       `json:"cuisines"`
	Category string         `json:"category"`

	Servings     int    `json:"servings"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookMinutes  int    `json:"cook_minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Difficulty   string `json:"difficulty"`

	Nutrition     model.Nutrition      `json:"nutrition"`
	DietFlags     []model.DietFlag     `json:"diet_flags"`
	AllergenFlags []model.AllergenFlag `json:"allergen_flags"`

	Ingredients []model.Ingredient `json:"ingredients"`
	Steps       []model.Step       `json:"steps"`
	Tips        []model.Tip        `json:"tips"`

	ImageURLs    []string  `json:"image_urls"`
	DisplayOrder int       `json:"display_order"`
	UserID       uuid.UUID `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRecipe converts the draft to its persistence representation.
func (d *RecipeDraft) ToRecipe() *model.Recipe {
	r := &model.Recipe{
		Slug:          d.Slug,
		LocaleSlugs:   model.JSONBStringMap(d.LocaleSlugs),
		Title:         model.JSONBLabel(d.Title),
		Description:   model.JSONBLabel(d.Description),
		Tags:          model.JSONBLabelSlice(d.Tags),
		Cuisines:      model.JSONBStringArray(d.Cuisines),
		Category:      d.Category,
		Servings:      d.Servings,
		PrepMinutes:   d.PrepMinutes,
		CookMinutes:   d.CookMinutes,
		TotalMinutes:  d.TotalMinutes,
		Difficulty:    d.Difficulty,
		Nutrition:     model.JSONBNutrition(d.Nutrition),
		DietFlags:     model.JSONBDietFlags(d.DietFlags),
		AllergenFlags: model.JSONBAllergenFlags(d.AllergenFlags),
		Ingredients:   model.JSONBIngredients(d.Ingredients),
		Steps:         model.JSONBSteps(d.Steps),
		Tips:          model.JSONBTips(d.Tips),
		ImageURLs:     model.JSONBStringArray(d.ImageURLs),
		DisplayOrder:  d.DisplayOrder,
		Published:     true,
		UserID:        d.UserID,
	}
	if id, err := uuid.Parse(d.ID); err == nil {
		r.ID = id
	}
	return r
}

// DraftStore keeps assembled drafts in Redis until the persistence handoff.
type DraftStore struct {
	redis *redis.Client
}

// NewDraftStore creates a new DraftStore instance.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{redis: client}
}

func draftKey(id string) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}

// SaveDraft stores the draft under a fresh ID with a bounded TTL.
func (s *DraftStore) SaveDraft(ctx context.Context, draft *RecipeDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	now := time.Now()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = now
	}
	draft.UpdatedAt = now

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.redis.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft retrieves a draft by ID.
func (s *DraftStore) GetDraft(ctx context.Context, id string) (*RecipeDraft, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}
	var draft RecipeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes a draft after the persistence handoff.
func (s *DraftStore) DeleteDraft(ctx context.Context, id string) error {
	return s.redis.Del(ctx, draftKey(id)).Err()
}
