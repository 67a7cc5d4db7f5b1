// Package feedback extracts deterministic signals from free-text human
// feedback.
//
// The extraction is intentionally a transparent keyword-rule table rather than
// a learned model: the resulting signals feed food-safety decisions, which
// must stay explainable.
package feedback

import (
	"math"
	"regexp"
	"strings"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
)

const (
	negativeHitDelta = -0.3
	positiveHitDelta = 0.2

	confidenceBase    = 0.3
	confidencePerHit  = 0.15
	confidenceCeiling = 1.0
)

// issueKeywords maps each issue tag to its trigger substrings. The first
// matching keyword wins per category; later keywords are not scanned.
var issueKeywords = []struct {
	tag      domain.IssueTag
	keywords []string
}{
	{domain.TagOil, []string{"oily", "greasy", "too much oil"}},
	{domain.TagSpice, []string{"too spicy", "burning", "hot"}},
	{domain.TagTaste, []string{"bad taste", "bland", "tasteless"}},
	{domain.TagTexture, []string{"rubbery", "hard", "overcooked", "undercooked"}},
	{domain.TagFreshness, []string{"stale", "not fresh", "smelly", "spoiled"}},
}

var positiveWords = []string{"good", "tasty", "delicious", "fresh", "perfect", "loved", "nice"}

// positivePatterns are whole-word matchers, compiled once.
var positivePatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(positiveWords))
	for i, w := range positiveWords {
		patterns[i] = regexp.MustCompile(`\b` + w + `\b`)
	}
	return patterns
}()

// Analyze converts raw feedback text into a FeedbackSignal. Empty or
// whitespace-only input yields the zero signal. Each matched issue category
// subtracts 0.3 from sentiment; each positive word found as a whole word adds
// 0.2. Sentiment is clamped to [-1,1], confidence saturates at 1.
func Analyze(text string) domain.FeedbackSignal {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return domain.FeedbackSignal{Sentiment: 0, Tags: []domain.IssueTag{}, Confidence: 0}
	}

	sentiment := 0.0
	hits := 0
	tags := []domain.IssueTag{}

	for _, entry := range issueKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, entry.tag)
				sentiment += negativeHitDelta
				hits++
				break
			}
		}
	}

	for _, pattern := range positivePatterns {
		if pattern.MatchString(text) {
			sentiment += positiveHitDelta
			hits++
		}
	}

	sentiment = math.Max(-1.0, math.Min(1.0, sentiment))
	confidence := math.Min(confidenceCeiling, confidenceBase+confidencePerHit*float64(hits))

	return domain.FeedbackSignal{
		Sentiment:  round2(sentiment),
		Tags:       tags,
		Confidence: round2(confidence),
	}
}

// PromptModifiers returns style modifiers for the prompt-construction
// collaborator. Static for now; this is the seam where aggregated historical
// feedback would later adjust tone.
func PromptModifiers() domain.PromptModifiers {
	return domain.PromptModifiers{
		Tone:           "friendly",
		SafetyEmphasis: true,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
