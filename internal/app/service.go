// Package app is the application layer: it orchestrates the decision pipeline
// (context aggregation, freshness scoring, feedback, decision mapping) behind
// the domain.AppService contract.
package app

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Shravani253/Ai-food-menu/internal/decision"
	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/Shravani253/Ai-food-menu/internal/feedback"
	"github.com/Shravani253/Ai-food-menu/internal/freshness"
	"github.com/Shravani253/Ai-food-menu/internal/menucontext"
	"github.com/Shravani253/Ai-food-menu/internal/metrics"
	"github.com/Shravani253/Ai-food-menu/internal/prompt"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

// Service wires the pipeline components together. All collaborators are
// injected; feedbackRepo and aggStore may be nil, in which case feedback is
// analyzed but not persisted and decisions fall back to the no-feedback
// default.
type Service struct {
	store        domain.RecordStore
	aggregator   *menucontext.Aggregator
	scorer       *freshness.Engine
	feedbackRepo domain.FeedbackRepository
	aggStore     domain.FeedbackAggregateStore
	clock        clockwork.Clock
}

func NewService(
	store domain.RecordStore,
	aggregator *menucontext.Aggregator,
	scorer *freshness.Engine,
	feedbackRepo domain.FeedbackRepository,
	aggStore domain.FeedbackAggregateStore,
	clock clockwork.Clock,
) *Service {
	return &Service{
		store:        store,
		aggregator:   aggregator,
		scorer:       scorer,
		feedbackRepo: feedbackRepo,
		aggStore:     aggStore,
		clock:        clock,
	}
}

// EvaluateMenuItem runs one full pipeline pass for a slug: snapshot, score,
// decide. Aggregated feedback is advisory: a failure to load it degrades to
// the no-feedback default instead of failing the evaluation.
func (s *Service) EvaluateMenuItem(ctx context.Context, slug string) (*domain.MenuEvaluation, error) {
	timer := prometheus.NewTimer(metrics.MenuEvaluationDuration)
	defer timer.ObserveDuration()

	snapshot, err := s.aggregator.BuildSnapshot(ctx, slug)
	if err != nil {
		return nil, err
	}

	fresh := s.scorer.ScoreMenu(*snapshot)

	fb := s.loadAggregate(ctx, snapshot.Menu.ID)
	dec := decision.Decide(snapshot.Menu, fresh.MenuFreshness, fb)

	metrics.MenuEvaluationsTotal.WithLabelValues(string(fresh.Status)).Inc()

	return &domain.MenuEvaluation{Decision: dec, Freshness: fresh}, nil
}

// ListMenu evaluates every menu item and orders the results by display
// priority, then name.
func (s *Service) ListMenu(ctx context.Context) ([]domain.MenuEvaluation, error) {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	evaluations := make([]domain.MenuEvaluation, 0, len(items))
	for _, item := range items {
		eval, err := s.EvaluateMenuItem(ctx, item.Slug)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, *eval)
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		if evaluations[i].Decision.Priority != evaluations[j].Decision.Priority {
			return evaluations[i].Decision.Priority < evaluations[j].Decision.Priority
		}
		return evaluations[i].Decision.Name < evaluations[j].Decision.Name
	})

	return evaluations, nil
}

// SubmitFeedback analyzes one feedback submission and returns the signal.
// Persistence and aggregate updates happen fire-and-forget on a detached
// context: they never block or fail the response. Empty text yields the zero
// signal and is not persisted.
func (s *Service) SubmitFeedback(ctx context.Context, menuID int64, text string) (domain.FeedbackSignal, error) {
	signal := feedback.Analyze(text)
	metrics.FeedbackSubmissionsTotal.WithLabelValues(metrics.SentimentBucket(signal.Sentiment)).Inc()

	if signal.Confidence == 0 && len(signal.Tags) == 0 && signal.Sentiment == 0 {
		return signal, nil
	}

	entry := domain.FeedbackEntry{
		ID:         uuid.New(),
		MenuID:     menuID,
		Text:       text,
		Sentiment:  signal.Sentiment,
		Tags:       signal.Tags,
		Confidence: signal.Confidence,
		CreatedAt:  s.clock.Now().UTC(),
	}

	go s.persistFeedback(context.WithoutCancel(ctx), entry, signal)

	return signal, nil
}

func (s *Service) persistFeedback(ctx context.Context, entry domain.FeedbackEntry, signal domain.FeedbackSignal) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.feedbackRepo != nil {
		if err := s.feedbackRepo.Insert(ctx, entry); err != nil {
			metrics.FeedbackPersistFailures.Inc()
			slog.Error("Failed to persist feedback", "menu_id", entry.MenuID, "error", err)
		}
	}
	if s.aggStore != nil {
		if err := s.aggStore.Record(ctx, entry.MenuID, signal); err != nil {
			metrics.FeedbackPersistFailures.Inc()
			slog.Error("Failed to update feedback aggregate", "menu_id", entry.MenuID, "error", err)
		}
	}
}

// MenuInsight builds the prompt payload for the external language-model
// collaborator from a fresh pipeline pass.
func (s *Service) MenuInsight(ctx context.Context, slug string) (*domain.Insight, error) {
	snapshot, err := s.aggregator.BuildSnapshot(ctx, slug)
	if err != nil {
		return nil, err
	}

	fresh := s.scorer.ScoreMenu(*snapshot)
	mods := feedback.PromptModifiers()

	return &domain.Insight{
		Prompt:    prompt.BuildInsight(snapshot.Menu, fresh, mods),
		Modifiers: mods,
	}, nil
}

// loadAggregate reads the menu item's feedback aggregate, degrading to nil
// (no feedback) if the store is missing or unreachable.
func (s *Service) loadAggregate(ctx context.Context, menuID int64) *domain.FeedbackAggregate {
	if s.aggStore == nil {
		return nil
	}
	agg, err := s.aggStore.Aggregate(ctx, menuID)
	if err != nil {
		slog.Warn("Failed to load feedback aggregate, deciding without feedback", "menu_id", menuID, "error", err)
		return nil
	}
	return agg
}
