package domain

import "time"

// Category classifies menu items and ingredients. It drives the safe storage
// temperature table in the freshness engine.
type Category string

const (
	CategorySeafood    Category = "Seafood"
	CategoryChicken    Category = "Chicken"
	CategoryMeat       Category = "Meat"
	CategoryVegetarian Category = "Vegetarian"
	CategoryDairy      Category = "Dairy"
	CategoryOther      Category = "Other"
)

// ParseCategory maps a raw category string to a known Category. Anything
// unrecognized becomes CategoryOther, which falls back to the default safe
// temperature range.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategorySeafood, CategoryChicken, CategoryMeat, CategoryVegetarian, CategoryDairy:
		return Category(s)
	default:
		return CategoryOther
	}
}

// RiskLevel is the declared supply-chain risk of an ingredient.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ParseRiskLevel maps a raw risk string to a RiskLevel, defaulting to RiskLow.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskMedium, RiskHigh:
		return RiskLevel(s)
	default:
		return RiskLow
	}
}

// EventTypeStorageCheck is the only event type the freshness engine inspects.
const EventTypeStorageCheck = "storage_check"

// MenuItem is a dish on the menu. Immutable within one pipeline invocation;
// owned by the record store.
type MenuItem struct {
	ID          int64    `json:"menu_id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"is_available"`
}

// Ingredient is a tracked supply item with its declared shelf-life window and
// risk level. LatestEvent is the most recent handling observation, nil when
// none has been recorded.
type Ingredient struct {
	ID             int64            `json:"ingredient_id"`
	Name           string           `json:"name"`
	Category       Category         `json:"category"`
	ReceivedDate   time.Time        `json:"received_date"`
	ExpiryDate     time.Time        `json:"expiry_date"`
	FreshnessScore float64          `json:"freshness_score"`
	RiskLevel      RiskLevel        `json:"risk_level"`
	LatestEvent    *IngredientEvent `json:"latest_event,omitempty"`
}

// IngredientEvent is a single handling/storage observation. Temp is extracted
// from the raw event value at scan time; nil means the value carried no usable
// temperature and the corresponding penalty is skipped.
type IngredientEvent struct {
	Type      string    `json:"event_type"`
	Temp      *float64  `json:"temp,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuContextSnapshot is one menu item plus its ingredients, each carrying its
// latest event. Built fresh per request and never cached.
type MenuContextSnapshot struct {
	Menu        MenuItem     `json:"menu"`
	Ingredients []Ingredient `json:"ingredients"`
	GeneratedAt time.Time    `json:"generated_at"`
}
