package domain

import "context"

// RecordStore abstracts the backing store the context aggregator reads from.
// Implementations return ErrMenuItemNotFound when a slug does not resolve and
// wrap connectivity failures with ErrStoreUnavailable.
type RecordStore interface {
	FindMenuItemBySlug(ctx context.Context, slug string) (*MenuItem, error)
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	ListIngredientsForMenu(ctx context.Context, menuID int64) ([]Ingredient, error)
	// LatestEventForIngredient returns (nil, nil) when no event exists.
	LatestEventForIngredient(ctx context.Context, ingredientID int64) (*IngredientEvent, error)
}

// FeedbackRepository persists feedback submissions for audit/RLHF use.
// Fire-and-forget from the pipeline's point of view: a failure must never
// block or influence a decision result.
type FeedbackRepository interface {
	Insert(ctx context.Context, entry FeedbackEntry) error
}

// FeedbackAggregateStore keeps rolling per-menu feedback counters.
type FeedbackAggregateStore interface {
	Record(ctx context.Context, menuID int64, signal FeedbackSignal) error
	// Aggregate returns (nil, nil) when no feedback has been recorded.
	Aggregate(ctx context.Context, menuID int64) (*FeedbackAggregate, error)
}

// MenuEvaluation bundles everything one pipeline pass produces for a dish.
type MenuEvaluation struct {
	Decision  DecisionRecord      `json:"decision"`
	Freshness MenuFreshnessResult `json:"freshness"`
}

// Insight is the payload handed to the external language-model collaborator.
// Generation itself happens outside this service.
type Insight struct {
	Prompt    string          `json:"prompt"`
	Modifiers PromptModifiers `json:"modifiers"`
}

// AppService is the application layer contract - handlers route all operations
// through here.
type AppService interface {
	ListMenu(ctx context.Context) ([]MenuEvaluation, error)
	EvaluateMenuItem(ctx context.Context, slug string) (*MenuEvaluation, error)
	SubmitFeedback(ctx context.Context, menuID int64, text string) (FeedbackSignal, error)
	MenuInsight(ctx context.Context, slug string) (*Insight, error)
}
