package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"itpf-legal-backend/models"
)

// QueryLogRepository handles database operations for answered questions
type QueryLogRepository struct {
	db *pgxpool.Pool
}

// NewQueryLogRepository creates a new query log repository
func NewQueryLogRepository(db *pgxpool.Pool) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// Create records an answered question
func (r *QueryLogRepository) Create(ctx context.Context, q *models.QueryLog) error {
	query := `
		INSERT INTO query_logs (
			id, question, language, intent, source, provider, fallback, not_found, cited, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		q.ID,
		q.Question,
		q.Language,
		q.Intent,
		q.Source,
		q.Provider,
		q.Fallback,
		q.NotFound,
		q.Cited,
		q.DurationMs,
	).Scan(&q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert query log: %w", err)
	}
	return nil
}

// ListRecent returns the latest answered questions, newest first
func (r *QueryLogRepository) ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error) {
	query := `
		SELECT id, question, language, intent, source, provider, fallback, not_found,
			cited, duration_ms, created_at
		FROM query_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query query logs: %w", err)
	}
	defer rows.Close()

	var logs []models.QueryLog
	for rows.Next() {
		var q models.QueryLog
		err := rows.Scan(
			&q.ID,
			&q.Question,
			&q.Language,
			&q.Intent,
			&q.Source,
			&q.Provider,
			&q.Fallback,
			&q.NotFound,
			&q.Cited,
			&q.DurationMs,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query log: %w", err)
		}
		logs = append(logs, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query logs: %w", err)
	}

	return logs, nil
}
