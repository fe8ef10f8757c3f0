package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// creates a new feedback repository
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// stores a feedback entry and returns it with its id
func (r *Repository) Create(ctx context.Context, req *CreateRequest) (*Feedback, error) {
	var f Feedback

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.UserID,
		req.Category,
		req.Message,
		req.Page,
		req.UserAgent,
	).Scan(
		&f.ID,
		&f.UserID,
		&f.Category,
		&f.Message,
		&f.Page,
		&f.UserAgent,
		&f.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	return &f, nil
}

// lists feedback newest first
func (r *Repository) List(ctx context.Context, limit int) ([]Feedback, error) {
	limit = ClampLimit(limit)

	rows, err := r.db.Query(ctx, queryList, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Feedback, error) {
		var f Feedback
		err := row.Scan(&f.ID, &f.UserID, &f.Category, &f.Message, &f.Page, &f.UserAgent, &f.CreatedAt)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}

	return items, nil
}

// applies the default and the ceiling to a requested page size
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}

	if limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
