package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

// DietFlag is a dietary claim a recipe can carry.
type DietFlag string

const (
	DietVegetarian  DietFlag = "vegetarian"
	DietVegan       DietFlag = "vegan"
	DietGlutenFree  DietFlag = "gluten-free"
	DietLactoseFree DietFlag = "lactose-free"
)

// DietFlags lists every valid diet flag.
var DietFlags = []DietFlag{DietVegetarian, DietVegan, DietGlutenFree, DietLactoseFree}

// IsValidDietFlag reports whether f is one of the allowed diet flags.
func IsValidDietFlag(f DietFlag) bool {
	for _, v := range DietFlags {
		if v == f {
			return true
		}
	}
	return false
}

// AllergenFlag is an allergen inferred from ingredient text.
type AllergenFlag string

const (
	AllergenGluten    AllergenFlag = "gluten"
	AllergenDairy     AllergenFlag = "dairy"
	AllergenEgg       AllergenFlag = "egg"
	AllergenNuts      AllergenFlag = "nuts"
	AllergenPeanut    AllergenFlag = "peanut"
	AllergenSoy       AllergenFlag = "soy"
	AllergenSesame    AllergenFlag = "sesame"
	AllergenFish      AllergenFlag = "fish"
	AllergenShellfish AllergenFlag = "shellfish"
)

// AllergenFlags lists every allergen in a fixed, deterministic order.
var AllergenFlags = []AllergenFlag{
	AllergenGluten, AllergenDairy, AllergenEgg, AllergenNuts, AllergenPeanut,
	AllergenSoy, AllergenSesame, AllergenFish, AllergenShellfish,
}

// Difficulty levels derived from total time.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Ingredient is one recipe ingredient. Order values are contiguous 0..N-1
// after normalization.
type Ingredient struct {
	Name   locale.Label `json:"name"`
	Amount locale.Label `json:"amount,omitempty"`
	Order  int          `json:"order"`
}

// Step is one preparation step. Order values are contiguous 1..N.
type Step struct {
	Order int          `json:"order"`
	Text  locale.Label `json:"text"`
}

// Tip is an optional serving or preparation tip. Order values are contiguous
// 1..N; AI-generated drafts always carry at least three.
type Tip struct {
	Order int          `json:"order"`
	Text  locale.Label `json:"text"`
}

// Nutrition holds optional per-serving values. Absent fields stay nil and are
// omitted from JSON rather than serialized as zero.
type Nutrition struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
}

// IsZero reports whether no nutrition value is present.
func (n Nutrition) IsZero() bool {
	return n.Calories == nil && n.Protein == nil && n.Carbs == nil &&
		n.Fat == nil && n.Fiber == nil && n.Sodium == nil
}

// Sanitized returns a copy with negative values dropped. Every stored
// nutrition value is zero or positive.
func (n Nutrition) Sanitized() Nutrition {
	drop := func(v *float64) *float64 {
		if v == nil || *v < 0 {
			return nil
		}
		return v
	}
	return Nutrition{
		Calories: drop(n.Calories),
		Protein:  drop(n.Protein),
		Carbs:    drop(n.Carbs),
		Fat:      drop(n.Fat),
		Fiber:    drop(n.Fiber),
		Sodium:   drop(n.Sodium),
	}
}

// jsonbValue marshals v for a JSONB column.
func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// jsonbScan unmarshals a JSONB column value into dest.
func jsonbScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return json.Unmarshal(bytes, dest)
}

// JSONBLabel stores a locale.Label in a JSONB column.
type JSONBLabel locale.Label

func (l JSONBLabel) Value() (driver.Value, error) {
	if l == nil {
		return "{}", nil
	}
	return jsonbValue(locale.Label(l))
}

func (l *JSONBLabel) Scan(value interface{}) error {
	*l = JSONBLabel{}
	return jsonbScan(value, (*locale.Label)(l))
}

// JSONBLabelSlice stores a list of labels (tags) in a JSONB column.
type JSONBLabelSlice []locale.Label

func (s JSONBLabelSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return jsonbValue([]locale.Label(s))
}

func (s *JSONBLabelSlice) Scan(value interface{}) error {
	*s = nil
	return jsonbScan(value, (*[]locale.Label)(s))
}

// JSONBStringArray stores a string slice in a JSONB column.
type JSONBStringArray []string

func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return jsonbValue([]string(a))
}

func (a *JSONBStringArray) Scan(value interface{}) error {
	*a = nil
	return jsonbScan(value, (*[]string)(a))
}

// JSONBStringMap stores the per-locale slug map in a JSONB column.
type JSONBStringMap map[locale.Code]string

func (m JSONBStringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonbValue(map[locale.Code]string(m))
}

func (m *JSONBStringMap) Scan(value interface{}) error {
	*m = JSONBStringMap{}
	return jsonbScan(value, (*map[locale.Code]string)(m))
}

// JSONBIngredients stores the ingredient list in a JSONB column.
type JSONBIngredients []Ingredient

func (i JSONBIngredients) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return jsonbValue([]Ingredient(i))
}

func (i *JSONBIngredients) Scan(value interface{}) error {
	*i = nil
	return jsonbScan(value, (*[]Ingredient)(i))
}

// JSONBSteps stores the step list in a JSONB column.
type JSONBSteps []Step

func (s JSONBSteps) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return jsonbValue([]Step(s))
}

func (s *JSONBSteps) Scan(value interface{}) error {
	*s = nil
	return jsonbScan(value, (*[]Step)(s))
}

// JSONBTips stores the tip list in a JSONB column.
type JSONBTips []Tip

func (t JSONBTips) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	return jsonbValue([]Tip(t))
}

func (t *JSONBTips) Scan(value interface{}) error {
	*t = nil
	return jsonbScan(value, (*[]Tip)(t))
}

// JSONBNutrition stores the optional nutrition block in a JSONB column.
type JSONBNutrition Nutrition

func (n JSONBNutrition) Value() (driver.Value, error) {
	return jsonbValue(Nutrition(n))
}

func (n *JSONBNutrition) Scan(value interface{}) error {
	*n = JSONBNutrition{}
	return jsonbScan(value, (*Nutrition)(n))
}

// JSONBDietFlags stores diet flags in a JSONB column.
type JSONBDietFlags []DietFlag

func (f JSONBDietFlags) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return jsonbValue([]DietFlag(f))
}

func (f *JSONBDietFlags) Scan(value interface{}) error {
	*f = nil
	return jsonbScan(value, (*[]DietFlag)(f))
}

// JSONBAllergenFlags stores allergen flags in a JSONB column.
type JSONBAllergenFlags []AllergenFlag

func (f JSONBAllergenFlags) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return jsonbValue([]AllergenFlag(f))
}

func (f *JSONBAllergenFlags) Scan(value interface{}) error {
	*f = nil
	return jsonbScan(value, (*[]AllergenFlag)(f))
}

// Recipe is the persisted draft aggregate produced by the assembly pipeline.
// The canonical Slug is globally unique; uniqueness is enforced by the
// database index, not by the pipeline.
type Recipe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug        string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	LocaleSlugs JSONBStringMap `gorm:"type:jsonb;not null;default:'{}'" json:"locale_slugs"`

	Title       JSONBLabel `gorm:"type:jsonb;not null;default:'{}'" json:"title"`
	Description JSONBLabel `gorm:"type:jsonb;not null;default:'{}'" json:"description"`

	Tags     JSONBLabelSlice  `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Cuisines JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisines"`
	Category string           `gorm:"size:100" json:"category"`

	Servings     int    `json:"servings"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookMinutes  int    `json:"cook_minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Difficulty   string `gorm:"size:20" json:"difficulty"`

	Nutrition     JSONBNutrition     `gorm:"type:jsonb;not null;default:'{}'" json:"nutrition"`
	DietFlags     JSONBDietFlags     `gorm:"type:jsonb;not null;default:'[]'" json:"diet_flags"`
	AllergenFlags JSONBAllergenFlags `gorm:"type:jsonb;not null;default:'[]'" json:"allergen_flags"`

	Ingredients JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBSteps       `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Tips        JSONBTips        `gorm:"type:jsonb;not null;default:'[]'" json:"tips"`

	ImageURLs JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"image_urls"`

	DisplayOrder int  `gorm:"index" json:"display_order"`
	Published    bool `gorm:"default:false" json:"published"`

	UserID    uuid.UUID       `gorm:"type:uuid" json:"user_id"`
	Embedding pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}
