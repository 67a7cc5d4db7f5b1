package feedback

import (
	"strings"
	"testing"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze_MixedFeedback(t *testing.T) {
	signal := Analyze("The food was oily and too spicy but tasty")

	assert.Equal(t, []domain.IssueTag{domain.TagOil, domain.TagSpice}, signal.Tags)
	assert.InDelta(t, -0.40, signal.Sentiment, 0.001)
	assert.InDelta(t, 0.75, signal.Confidence, 0.001)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		signal := Analyze(text)

		assert.Zero(t, signal.Sentiment)
		assert.Empty(t, signal.Tags)
		assert.Zero(t, signal.Confidence)
	}
}

func TestAnalyze_PositiveOnly(t *testing.T) {
	signal := Analyze("Really good and tasty!")

	assert.Empty(t, signal.Tags)
	assert.InDelta(t, 0.40, signal.Sentiment, 0.001)
	assert.InDelta(t, 0.60, signal.Confidence, 0.001)
}

func TestAnalyze_PositiveWholeWordsOnly(t *testing.T) {
	// "refreshing" must not match the whole-word "fresh"
	signal := Analyze("very refreshing presentation")

	assert.Zero(t, signal.Sentiment)
	assert.InDelta(t, 0.30, signal.Confidence, 0.001)
}

func TestAnalyze_FirstKeywordWinsPerCategory(t *testing.T) {
	// two oil keywords still count as a single hit
	signal := Analyze("oily and greasy")

	assert.Equal(t, []domain.IssueTag{domain.TagOil}, signal.Tags)
	assert.InDelta(t, -0.30, signal.Sentiment, 0.001)
	assert.InDelta(t, 0.45, signal.Confidence, 0.001)
}

func TestAnalyze_SentimentClamped(t *testing.T) {
	signal := Analyze("oily, too spicy, bad taste, rubbery and stale")

	assert.Len(t, signal.Tags, 5)
	assert.InDelta(t, -1.0, signal.Sentiment, 0.001)
	assert.InDelta(t, 1.0, signal.Confidence, 0.001)
}

func TestAnalyze_PositiveSentimentClamped(t *testing.T) {
	signal := Analyze("good tasty delicious fresh perfect loved nice")

	// 7 positive hits at +0.2 clamp to 1.0
	assert.InDelta(t, 1.0, signal.Sentiment, 0.001)
	assert.InDelta(t, 1.0, signal.Confidence, 0.001)
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	lower := Analyze("the curry was oily but DELICIOUS")
	upper := Analyze("THE CURRY WAS OILY BUT delicious")

	assert.Equal(t, lower, upper)
	assert.Equal(t, []domain.IssueTag{domain.TagOil}, lower.Tags)
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "stale and smelly, not fresh at all"

	first := Analyze(text)
	second := Analyze(strings.Clone(text))

	assert.Equal(t, first, second)
}

func TestPromptModifiers_Defaults(t *testing.T) {
	mods := PromptModifiers()

	assert.Equal(t, "friendly", mods.Tone)
	assert.True(t, mods.SafetyEmphasis)
}
