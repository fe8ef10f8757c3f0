package feedback

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of *pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// handles feedback database operations
type Repository struct {
	db Querier
}

// a single piece of user feedback
type Feedback struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Page      string    `json:"page,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// contains data for a new feedback row
type CreateRequest struct {
	UserID    string
	Category  string
	Message   string
	Page      string
	UserAgent string
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)
