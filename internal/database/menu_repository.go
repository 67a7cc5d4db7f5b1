package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/Shravani253/Ai-food-menu/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// MenuRepo implements domain.RecordStore backed by PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

func NewMenuRepo(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// storeErr classifies a query failure as a store-availability problem while
// keeping the cause in the error chain.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
}

func (r *MenuRepo) FindMenuItemBySlug(ctx context.Context, slug string) (*domain.MenuItem, error) {
	timer := prometheus.NewTimer(metrics.RecordStoreQueryDuration.WithLabelValues("find_menu_item_by_slug"))
	defer timer.ObserveDuration()

	var item domain.MenuItem
	var category string
	err := r.pool.QueryRow(ctx, `
		SELECT menu_id, slug, name, category, price, is_available
		FROM menu_items
		WHERE slug = $1
	`, slug).Scan(&item.ID, &item.Slug, &item.Name, &category, &item.Price, &item.IsAvailable)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, storeErr("find menu item by slug", err)
	}

	item.Category = domain.ParseCategory(category)
	return &item, nil
}

func (r *MenuRepo) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	timer := prometheus.NewTimer(metrics.RecordStoreQueryDuration.WithLabelValues("list_menu_items"))
	defer timer.ObserveDuration()

	rows, err := r.pool.Query(ctx, `
		SELECT menu_id, slug, name, category, price, is_available
		FROM menu_items
		ORDER BY menu_id
	`)
	if err != nil {
		return nil, storeErr("list menu items", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var category string
		if err := rows.Scan(&item.ID, &item.Slug, &item.Name, &category, &item.Price, &item.IsAvailable); err != nil {
			return nil, storeErr("scan menu item", err)
		}
		item.Category = domain.ParseCategory(category)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list menu items", err)
	}

	return items, nil
}

func (r *MenuRepo) ListIngredientsForMenu(ctx context.Context, menuID int64) ([]domain.Ingredient, error) {
	timer := prometheus.NewTimer(metrics.RecordStoreQueryDuration.WithLabelValues("list_ingredients_for_menu"))
	defer timer.ObserveDuration()

	rows, err := r.pool.Query(ctx, `
		SELECT i.ingredient_id, i.name, i.category, i.received_date, i.expiry_date, i.freshness_score, i.risk_level
		FROM ingredients i
		JOIN menu_ingredients mi ON i.ingredient_id = mi.ingredient_id
		WHERE mi.menu_id = $1
		ORDER BY i.ingredient_id
	`, menuID)
	if err != nil {
		return nil, storeErr("list ingredients for menu", err)
	}
	defer rows.Close()

	var ingredients []domain.Ingredient
	for rows.Next() {
		var ing domain.Ingredient
		var category, riskLevel string
		if err := rows.Scan(&ing.ID, &ing.Name, &category, &ing.ReceivedDate, &ing.ExpiryDate, &ing.FreshnessScore, &riskLevel); err != nil {
			return nil, storeErr("scan ingredient", err)
		}
		ing.Category = domain.ParseCategory(category)
		ing.RiskLevel = domain.ParseRiskLevel(riskLevel)
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list ingredients for menu", err)
	}

	return ingredients, nil
}

// LatestEventForIngredient returns the most recent event for an ingredient,
// ordered by created_at with event id as a deterministic tiebreak. Returns
// (nil, nil) when no event exists.
func (r *MenuRepo) LatestEventForIngredient(ctx context.Context, ingredientID int64) (*domain.IngredientEvent, error) {
	timer := prometheus.NewTimer(metrics.RecordStoreQueryDuration.WithLabelValues("latest_event_for_ingredient"))
	defer timer.ObserveDuration()

	var event domain.IngredientEvent
	var value map[string]any
	err := r.pool.QueryRow(ctx, `
		SELECT event_type, event_value, created_at
		FROM ingredient_events
		WHERE ingredient_id = $1
		ORDER BY created_at DESC, event_id DESC
		LIMIT 1
	`, ingredientID).Scan(&event.Type, &value, &event.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("latest event for ingredient", err)
	}

	// A value missing the numeric temp field is treated as "no information",
	// not a failure.
	if temp, ok := value["temp"].(float64); ok {
		event.Temp = &temp
	}

	return &event, nil
}
