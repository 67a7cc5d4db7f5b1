// Package menucontext assembles immutable per-request snapshots of a menu
// item, its ingredients, and each ingredient's latest handling event.
package menucontext

import (
	"context"
	"fmt"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Aggregator builds MenuContextSnapshots from the record store. Snapshots are
// built fresh per call and never cached.
type Aggregator struct {
	store domain.RecordStore
	clock clockwork.Clock
}

func NewAggregator(store domain.RecordStore, clock clockwork.Clock) *Aggregator {
	return &Aggregator{store: store, clock: clock}
}

// BuildSnapshot resolves a slug to exactly one menu item, loads its
// ingredients, and attaches the latest event per ingredient. A slug that does
// not resolve propagates domain.ErrMenuItemNotFound; store connectivity
// failures propagate domain.ErrStoreUnavailable. An ingredient without events
// is valid and carries a nil LatestEvent.
func (a *Aggregator) BuildSnapshot(ctx context.Context, slug string) (*domain.MenuContextSnapshot, error) {
	menu, err := a.store.FindMenuItemBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve slug %q: %w", slug, err)
	}

	ingredients, err := a.store.ListIngredientsForMenu(ctx, menu.ID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients for menu %d: %w", menu.ID, err)
	}

	for i := range ingredients {
		event, err := a.store.LatestEventForIngredient(ctx, ingredients[i].ID)
		if err != nil {
			return nil, fmt.Errorf("latest event for ingredient %d: %w", ingredients[i].ID, err)
		}
		ingredients[i].LatestEvent = event
	}

	return &domain.MenuContextSnapshot{
		Menu:        *menu,
		Ingredients: ingredients,
		GeneratedAt: a.clock.Now().UTC(),
	}, nil
}
