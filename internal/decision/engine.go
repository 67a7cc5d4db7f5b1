// Package decision maps freshness scores and feedback aggregates onto the
// final presentation-ready decision record.
package decision

import "github.com/Shravani253/Ai-food-menu/internal/domain"

// Availability tiers on the supplied freshness score. These thresholds are a
// separate policy table from the freshness engine's status thresholds: one
// speaks to supply-chain risk, the other to UI availability.
const (
	unavailableBelow = 60
	limitedBelow     = 75
)

// Priority adjustments from aggregated feedback. Both may apply.
const (
	sentimentPriorityThreshold = -0.4
	negativeRatioThreshold     = 0.6
)

// Decide combines a menu item, its freshness score, and optionally aggregated
// feedback into a DecisionRecord. Identity fields pass through unchanged.
// feedback may be nil, meaning no feedback has been observed.
func Decide(item domain.MenuItem, freshnessScore float64, feedback *domain.FeedbackAggregate) domain.DecisionRecord {
	var availability domain.Availability
	var status domain.MenuStatus

	switch {
	case freshnessScore < unavailableBelow:
		availability = domain.Unavailable
		status = domain.MenuStatusUnavailable
	case freshnessScore < limitedBelow:
		availability = domain.Limited
		status = domain.MenuStatusCaution
	default:
		availability = domain.Available
		status = domain.MenuStatusFresh
	}

	priority := 1
	if feedback != nil {
		if feedback.AvgSentiment < sentimentPriorityThreshold {
			priority += 2
		}
		if feedback.NegativeRatio > negativeRatioThreshold {
			priority += 1
		}
	}

	warnings := []string{}
	if feedback != nil {
		if feedback.HasTag(domain.TagOil) {
			warnings = append(warnings, "May feel heavy")
		}
		if feedback.HasTag(domain.TagSpice) {
			warnings = append(warnings, "Spicy for some")
		}
	}

	return domain.DecisionRecord{
		MenuID:       item.ID,
		Slug:         item.Slug,
		Name:         item.Name,
		Category:     item.Category,
		Price:        item.Price,
		Availability: availability,
		Status:       status,
		Priority:     priority,
		Warnings:     warnings,
	}
}
