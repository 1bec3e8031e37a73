package event

import "context"

// Repository describes event reads from use cases.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID int64) ([]Event, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
}
