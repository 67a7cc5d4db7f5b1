package database

import (
	"context"
	"fmt"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackRepo implements domain.FeedbackRepository backed by PostgreSQL.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

func (r *FeedbackRepo) Insert(ctx context.Context, entry domain.FeedbackEntry) error {
	tags := make([]string, len(entry.Tags))
	for i, tag := range entry.Tags {
		tags[i] = string(tag)
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback_logs (id, menu_id, feedback_text, sentiment, tags, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.MenuID, entry.Text, entry.Sentiment, tags, entry.Confidence, entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}
