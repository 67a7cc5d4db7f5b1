package menucontext

import (
	"context"
	"testing"
	"time"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockRecordStore struct {
	menu        *domain.MenuItem
	menuErr     error
	ingredients []domain.Ingredient
	listErr     error
	events      map[int64]*domain.IngredientEvent
	eventErr    error
}

func (m *mockRecordStore) FindMenuItemBySlug(ctx context.Context, slug string) (*domain.MenuItem, error) {
	if m.menuErr != nil {
		return nil, m.menuErr
	}
	return m.menu, nil
}

func (m *mockRecordStore) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if m.menu == nil {
		return nil, nil
	}
	return []domain.MenuItem{*m.menu}, nil
}

func (m *mockRecordStore) ListIngredientsForMenu(ctx context.Context, menuID int64) ([]domain.Ingredient, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.ingredients, nil
}

func (m *mockRecordStore) LatestEventForIngredient(ctx context.Context, ingredientID int64) (*domain.IngredientEvent, error) {
	if m.eventErr != nil {
		return nil, m.eventErr
	}
	return m.events[ingredientID], nil
}

// --- Tests ---

var aggregatorNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func temp(v float64) *float64 { return &v }

func TestBuildSnapshot_AssemblesMenuIngredientsAndEvents(t *testing.T) {
	store := &mockRecordStore{
		menu: &domain.MenuItem{ID: 7, Slug: "prawn-masala", Name: "Prawn Masala", Category: domain.CategorySeafood, Price: 680, IsAvailable: true},
		ingredients: []domain.Ingredient{
			{ID: 1, Name: "Prawns", Category: domain.CategorySeafood},
			{ID: 2, Name: "Tomatoes", Category: domain.CategoryVegetarian},
		},
		events: map[int64]*domain.IngredientEvent{
			1: {Type: domain.EventTypeStorageCheck, Temp: temp(3.5), CreatedAt: aggregatorNow.Add(-time.Hour)},
		},
	}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	snapshot, err := aggregator.BuildSnapshot(context.Background(), "prawn-masala")

	require.NoError(t, err)
	assert.Equal(t, int64(7), snapshot.Menu.ID)
	require.Len(t, snapshot.Ingredients, 2)

	require.NotNil(t, snapshot.Ingredients[0].LatestEvent)
	assert.InDelta(t, 3.5, *snapshot.Ingredients[0].LatestEvent.Temp, 0.001)

	// no event recorded for the second ingredient is valid
	assert.Nil(t, snapshot.Ingredients[1].LatestEvent)

	assert.Equal(t, aggregatorNow, snapshot.GeneratedAt)
}

func TestBuildSnapshot_NotFoundPropagates(t *testing.T) {
	store := &mockRecordStore{menuErr: domain.ErrMenuItemNotFound}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	_, err := aggregator.BuildSnapshot(context.Background(), "no-such-dish")

	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestBuildSnapshot_StoreUnavailablePropagates(t *testing.T) {
	store := &mockRecordStore{menuErr: domain.ErrStoreUnavailable}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	_, err := aggregator.BuildSnapshot(context.Background(), "grilled-salmon")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBuildSnapshot_IngredientListFailureFailsWholeCall(t *testing.T) {
	store := &mockRecordStore{
		menu:    &domain.MenuItem{ID: 1, Slug: "grilled-salmon"},
		listErr: domain.ErrStoreUnavailable,
	}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	_, err := aggregator.BuildSnapshot(context.Background(), "grilled-salmon")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBuildSnapshot_EventFailureFailsWholeCall(t *testing.T) {
	store := &mockRecordStore{
		menu:        &domain.MenuItem{ID: 1, Slug: "grilled-salmon"},
		ingredients: []domain.Ingredient{{ID: 1, Name: "Salmon Fillet"}},
		eventErr:    domain.ErrStoreUnavailable,
	}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	_, err := aggregator.BuildSnapshot(context.Background(), "grilled-salmon")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBuildSnapshot_EmptyIngredientListIsValid(t *testing.T) {
	store := &mockRecordStore{
		menu: &domain.MenuItem{ID: 3, Slug: "clam-soup", Name: "Clam Soup"},
	}
	aggregator := NewAggregator(store, clockwork.NewFakeClockAt(aggregatorNow))

	snapshot, err := aggregator.BuildSnapshot(context.Background(), "clam-soup")

	require.NoError(t, err)
	assert.Empty(t, snapshot.Ingredients)
}
