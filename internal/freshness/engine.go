// Package freshness implements the deterministic freshness scoring engine.
//
// It computes and explains WHY a dish is fresh, risky, or unsafe. Scoring is a
// pure function of its input and the injected clock: identical input and a
// fixed "today" always produce identical results.
package freshness

import (
	"fmt"
	"math"
	"time"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Penalty weights applied on top of the shelf-life base score.
const (
	penaltyExpired    = 50
	penaltyNearExpiry = 20
	penaltyBadStorage = 15
	penaltyRiskMedium = 10
	penaltyRiskHigh   = 25
)

// Menu status thresholds on the weakest-link score.
const (
	unsafeBelow  = 40
	cautionBelow = 70
)

// Engine scores ingredients and menus. The clock supplies "today" so tests can
// pin it.
type Engine struct {
	clock clockwork.Clock
}

func NewEngine(clock clockwork.Clock) *Engine {
	return &Engine{clock: clock}
}

// safeTempRange returns the safe storage temperature range (°C) for a
// category. Unknown categories get the conservative default.
func safeTempRange(category domain.Category) (min, max float64) {
	switch category {
	case domain.CategorySeafood, domain.CategoryChicken, domain.CategoryMeat:
		return 0, 4
	case domain.CategoryVegetarian:
		return 2, 8
	case domain.CategoryDairy:
		return 2, 6
	default:
		return 0, 8
	}
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the non-negative whole-day difference between two dates.
func daysBetween(start, end time.Time) int {
	days := int(dateOf(end).Sub(dateOf(start)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScoreIngredient computes the freshness score for a single ingredient.
//
// The base score is the remaining share of total shelf life. Penalties
// accumulate for expiry, unsafe storage temperature on the latest
// storage_check event, and declared risk. All outputs are clamped to their
// documented ranges so malformed day counts can never propagate outward.
func (e *Engine) ScoreIngredient(ing domain.Ingredient) domain.IngredientFreshnessResult {
	today := e.clock.Now()

	totalLife := daysBetween(ing.ReceivedDate, ing.ExpiryDate)
	remainingLife := daysBetween(today, ing.ExpiryDate)

	baseScore := 0.0
	if totalLife > 0 {
		baseScore = clamp(round2(float64(remainingLife)/float64(totalLife)*100), 0, 100)
	}

	var warnings []string
	penalty := 0.0

	if remainingLife <= 0 {
		warnings = append(warnings, "Ingredient expired")
		penalty += penaltyExpired
	} else if remainingLife <= 1 {
		warnings = append(warnings, "Ingredient near expiry")
		penalty += penaltyNearExpiry
	}

	// Temperature check considers the latest event only. A missing or
	// malformed temperature means "no information", not a failure.
	if ev := ing.LatestEvent; ev != nil && ev.Type == domain.EventTypeStorageCheck && ev.Temp != nil {
		minT, maxT := safeTempRange(ing.Category)
		if *ev.Temp < minT || *ev.Temp > maxT {
			warnings = append(warnings, fmt.Sprintf("Unsafe storage temperature detected (%g°C)", *ev.Temp))
			penalty += penaltyBadStorage
		}
	}

	switch ing.RiskLevel {
	case domain.RiskMedium:
		penalty += penaltyRiskMedium
	case domain.RiskHigh:
		penalty += penaltyRiskHigh
	}

	finalScore := clamp(round2(baseScore-penalty), 0, 100)

	return domain.IngredientFreshnessResult{
		IngredientID:   ing.ID,
		Name:           ing.Name,
		FinalFreshness: finalScore,
		BaseFreshness:  baseScore,
		Penalty:        penalty,
		Warnings:       warnings,
	}
}

// ScoreMenu computes the freshness score for an entire menu item. Freshness is
// a weakest-link property: the lowest-scoring ingredient decides the dish. A
// snapshot with no tracked ingredients keeps the documented maximal score.
func (e *Engine) ScoreMenu(snapshot domain.MenuContextSnapshot) domain.MenuFreshnessResult {
	results := make([]domain.IngredientFreshnessResult, 0, len(snapshot.Ingredients))
	minScore := 100.0
	warnings := []string{}
	seen := make(map[string]struct{})

	for _, ing := range snapshot.Ingredients {
		result := e.ScoreIngredient(ing)
		results = append(results, result)

		minScore = math.Min(minScore, result.FinalFreshness)
		for _, w := range result.Warnings {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			warnings = append(warnings, w)
		}
	}

	return domain.MenuFreshnessResult{
		MenuID:        snapshot.Menu.ID,
		MenuName:      snapshot.Menu.Name,
		MenuFreshness: round2(minScore),
		Status:        statusFor(minScore),
		Warnings:      warnings,
		Ingredients:   results,
		EvaluatedAt:   e.clock.Now().UTC(),
	}
}

func statusFor(score float64) domain.FreshnessStatus {
	switch {
	case score < unsafeBelow:
		return domain.StatusUnsafe
	case score < cautionBelow:
		return domain.StatusCaution
	default:
		return domain.StatusFresh
	}
}
