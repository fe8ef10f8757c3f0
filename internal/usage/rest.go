package usage

import (
	"context"
	"fmt"
)

// RPCCaller is satisfied by *supabase.Client.
type RPCCaller interface {
	RPC(ctx context.Context, fn string, params any, out any) error
}

// RPCCounter calls the counting functions through PostgREST.
type RPCCounter struct {
	client RPCCaller
}

func NewRPCCounter(client RPCCaller) *RPCCounter {
	return &RPCCounter{client: client}
}

func (r *RPCCounter) Increment(ctx context.Context, userID string, by int) error {
	params := map[string]any{
		"p_user_id":   userID,
		"p_increment": by,
	}

	if err := r.client.RPC(ctx, FnIncrementToday, params, nil); err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	return nil
}

func (r *RPCCounter) Today(ctx context.Context, userID string) (int, error) {
	var count *int
	if err := r.client.RPC(ctx, FnGetToday, map[string]any{"p_user_id": userID}, &count); err != nil {
		return 0, fmt.Errorf("failed to get usage: %w", err)
	}

	if count == nil {
		return 0, nil
	}

	return *count, nil
}
