package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// Hash fields of one menu item's rolling feedback aggregate.
const (
	fieldEntries      = "entries"
	fieldSentimentSum = "sentiment_sum"
	fieldNegative     = "negative"
	tagFieldPrefix    = "tag:"
)

// FeedbackAggStore keeps rolling per-menu feedback counters in a Redis hash.
// Counters are monotonic; averages and ratios are derived on read.
type FeedbackAggStore struct {
	rdb *goredis.Client
}

func NewFeedbackAggStore(rdb *goredis.Client) *FeedbackAggStore {
	return &FeedbackAggStore{rdb: rdb}
}

func feedbackKey(menuID int64) string {
	return fmt.Sprintf("feedback:agg:%d", menuID)
}

// Record folds one analyzed signal into the menu item's aggregate.
func (s *FeedbackAggStore) Record(ctx context.Context, menuID int64, signal domain.FeedbackSignal) error {
	key := feedbackKey(menuID)

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, fieldEntries, 1)
	pipe.HIncrByFloat(ctx, key, fieldSentimentSum, signal.Sentiment)
	if signal.Sentiment < 0 {
		pipe.HIncrBy(ctx, key, fieldNegative, 1)
	}
	for _, tag := range signal.Tags {
		pipe.HIncrBy(ctx, key, tagFieldPrefix+string(tag), 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record feedback for menu %d: %w", menuID, err)
	}
	return nil
}

// Aggregate derives the feedback summary for one menu item. Returns (nil, nil)
// when no feedback has been recorded. A tag is dominant when it appears in
// more than half of the recorded entries; dominant tags keep canonical order.
func (s *FeedbackAggStore) Aggregate(ctx context.Context, menuID int64) (*domain.FeedbackAggregate, error) {
	fields, err := s.rdb.HGetAll(ctx, feedbackKey(menuID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load feedback aggregate for menu %d: %w", menuID, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	entries := parseInt(fields[fieldEntries])
	if entries <= 0 {
		return nil, nil
	}
	sentimentSum := parseFloat(fields[fieldSentimentSum])
	negative := parseInt(fields[fieldNegative])

	agg := &domain.FeedbackAggregate{
		AvgSentiment:  sentimentSum / float64(entries),
		NegativeRatio: float64(negative) / float64(entries),
	}

	for _, tag := range domain.IssueTags {
		count := parseInt(fields[tagFieldPrefix+string(tag)])
		if count*2 > entries {
			agg.DominantTags = append(agg.DominantTags, tag)
		}
	}

	return agg, nil
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0 // graceful degradation for corrupt data
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
