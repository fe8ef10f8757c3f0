package usage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	queryIncrementToday = `
		SELECT increment_user_usage_today($1, $2)
	`

	queryGetToday = `
		SELECT COALESCE(get_user_usage_today($1), 0)
	`
)

// Querier is the part of *pgxpool.Pool the counter uses.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresCounter calls the counting functions over the Supabase pooler.
type PostgresCounter struct {
	db Querier
}

func NewPostgresCounter(db Querier) *PostgresCounter {
	return &PostgresCounter{db: db}
}

func (p *PostgresCounter) Increment(ctx context.Context, userID string, by int) error {
	if _, err := p.db.Exec(ctx, queryIncrementToday, userID, by); err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	return nil
}

func (p *PostgresCounter) Today(ctx context.Context, userID string) (int, error) {
	var count int
	if err := p.db.QueryRow(ctx, queryGetToday, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get usage: %w", err)
	}

	return count, nil
}
