package domain

// Availability is the UI-facing availability tier of a menu item.
type Availability string

const (
	Available   Availability = "AVAILABLE"
	Limited     Availability = "LIMITED"
	Unavailable Availability = "UNAVAILABLE"
)

// MenuStatus is the user-facing status label paired with an Availability.
// It is intentionally a separate enum from FreshnessStatus: the two policy
// tables serve different audiences and are not reconciled.
type MenuStatus string

const (
	MenuStatusFresh       MenuStatus = "Fresh"
	MenuStatusCaution     MenuStatus = "Caution"
	MenuStatusUnavailable MenuStatus = "Unavailable"
)

// DecisionRecord is the final, presentation-ready state of one menu item.
// Lower Priority sorts first.
type DecisionRecord struct {
	MenuID       int64        `json:"menu_id"`
	Slug         string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Price        float64      `json:"price"`
	Availability Availability `json:"availability"`
	Status       MenuStatus   `json:"status"`
	Priority     int          `json:"priority"`
	Warnings     []string     `json:"warnings"`
}
