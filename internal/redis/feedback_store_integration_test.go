package redis

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

var (
	testRedisURL string
	redContainer testcontainers.Container
)

func TestMain(m *testing.M) {
	// Parse flags to check for -short
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	redContainer, err = redis.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start redis container: %v\n", err)
		os.Exit(1)
	}

	endpoint, err := redContainer.Endpoint(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get redis endpoint: %v\n", err)
		os.Exit(1)
	}
	testRedisURL = "redis://" + endpoint

	defer func() {
		if err := redContainer.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed to terminate redis container: %v\n", err)
		}
	}()
	os.Exit(m.Run())
}

func setupTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, testRedisURL)
	if err != nil {
		t.Fatalf("failed to create redis client: %v", err)
	}

	// Flush all keys before each test
	if err := client.FlushAll(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestNewClient_InvalidURL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	_, err := NewClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestAggregate_NoFeedbackReturnsNil(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)

	agg, err := store.Aggregate(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, agg)
}

func TestRecordAndAggregate_SingleSignal(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)
	ctx := context.Background()

	signal := domain.FeedbackSignal{
		Sentiment:  -0.4,
		Tags:       []domain.IssueTag{domain.TagOil, domain.TagSpice},
		Confidence: 0.75,
	}
	require.NoError(t, store.Record(ctx, 1, signal))

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.InDelta(t, -0.4, agg.AvgSentiment, 0.001)
	assert.InDelta(t, 1.0, agg.NegativeRatio, 0.001)
	assert.Equal(t, []domain.IssueTag{domain.TagOil, domain.TagSpice}, agg.DominantTags)
}

func TestRecordAndAggregate_AveragesOverEntries(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: -0.6, Tags: []domain.IssueTag{domain.TagOil}}))
	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: 0.4, Tags: []domain.IssueTag{}}))

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.InDelta(t, -0.1, agg.AvgSentiment, 0.001)
	assert.InDelta(t, 0.5, agg.NegativeRatio, 0.001)
	// oil appears in exactly half the entries, not dominant
	assert.Empty(t, agg.DominantTags)
}

func TestRecordAndAggregate_DominantTagsKeepCanonicalOrder(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)
	ctx := context.Background()

	// spice recorded before oil; aggregation still reports oil first
	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: -0.6, Tags: []domain.IssueTag{domain.TagSpice, domain.TagOil}}))
	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: -0.3, Tags: []domain.IssueTag{domain.TagOil, domain.TagSpice}}))

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, []domain.IssueTag{domain.TagOil, domain.TagSpice}, agg.DominantTags)
}

func TestRecordAndAggregate_MenusAreIsolated(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: -0.9, Tags: []domain.IssueTag{domain.TagFreshness}}))

	agg, err := store.Aggregate(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, agg)
}

func TestAggregate_CorruptFieldDegradesToZero(t *testing.T) {
	client := setupTestClient(t)
	store := NewFeedbackAggStore(client)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, 1, domain.FeedbackSignal{Sentiment: -0.5, Tags: []domain.IssueTag{domain.TagOil}}))
	require.NoError(t, client.HSet(ctx, feedbackKey(1), fieldSentimentSum, "garbage").Err())

	agg, err := store.Aggregate(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Zero(t, agg.AvgSentiment)
	assert.InDelta(t, 1.0, agg.NegativeRatio, 0.001)
}
