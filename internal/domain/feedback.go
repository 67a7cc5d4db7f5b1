package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssueTag is a closed set of issue categories extractable from feedback text.
type IssueTag string

const (
	TagOil       IssueTag = "oil"
	TagSpice     IssueTag = "spice"
	TagTaste     IssueTag = "taste"
	TagTexture   IssueTag = "texture"
	TagFreshness IssueTag = "freshness"
)

// IssueTags lists all tags in canonical order.
var IssueTags = []IssueTag{TagOil, TagSpice, TagTaste, TagTexture, TagFreshness}

// FeedbackSignal is the deterministic summary extracted from one piece of
// free-text feedback. Sentiment is clamped to [-1,1], Confidence to [0,1].
type FeedbackSignal struct {
	Sentiment  float64    `json:"sentiment"`
	Tags       []IssueTag `json:"tags"`
	Confidence float64    `json:"confidence"`
}

// FeedbackAggregate summarizes the feedback history of one menu item. The
// decision engine consumes it; nil stands for "no feedback observed".
type FeedbackAggregate struct {
	AvgSentiment  float64    `json:"avg_sentiment"`
	NegativeRatio float64    `json:"negative_ratio"`
	DominantTags  []IssueTag `json:"dominant_tags"`
}

// HasTag reports whether tag is among the aggregate's dominant tags.
func (a *FeedbackAggregate) HasTag(tag IssueTag) bool {
	for _, t := range a.DominantTags {
		if t == tag {
			return true
		}
	}
	return false
}

// PromptModifiers carries style hints for the prompt-construction collaborator.
type PromptModifiers struct {
	Tone           string `json:"tone"`
	SafetyEmphasis bool   `json:"safety_emphasis"`
}

// FeedbackEntry is one persisted feedback submission, kept for audit and later
// aggregation work.
type FeedbackEntry struct {
	ID         uuid.UUID  `json:"id"`
	MenuID     int64      `json:"menu_id"`
	Text       string     `json:"text"`
	Sentiment  float64    `json:"sentiment"`
	Tags       []IssueTag `json:"tags"`
	Confidence float64    `json:"confidence"`
	CreatedAt  time.Time  `json:"created_at"`
}
