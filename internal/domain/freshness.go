package domain

import "time"

// FreshnessStatus is the supply-chain facing tier of a menu freshness result.
type FreshnessStatus string

const (
	StatusFresh   FreshnessStatus = "Fresh"
	StatusCaution FreshnessStatus = "Caution"
	StatusUnsafe  FreshnessStatus = "Unsafe"
)

// IngredientFreshnessResult explains why a single ingredient scored the way it
// did. FinalFreshness and BaseFreshness are clamped to [0,100].
type IngredientFreshnessResult struct {
	IngredientID   int64    `json:"ingredient_id"`
	Name           string   `json:"name"`
	FinalFreshness float64  `json:"final_freshness"`
	BaseFreshness  float64  `json:"base_freshness"`
	Penalty        float64  `json:"penalty"`
	Warnings       []string `json:"warnings"`
}

// MenuFreshnessResult is the weakest-link aggregate over a snapshot's
// ingredients. Warnings are deduplicated across ingredients.
type MenuFreshnessResult struct {
	MenuID        int64                       `json:"menu_id"`
	MenuName      string                      `json:"menu_name"`
	MenuFreshness float64                     `json:"menu_freshness"`
	Status        FreshnessStatus             `json:"status"`
	Warnings      []string                    `json:"warnings"`
	Ingredients   []IngredientFreshnessResult `json:"ingredients"`
	EvaluatedAt   time.Time                   `json:"evaluated_at"`
}
