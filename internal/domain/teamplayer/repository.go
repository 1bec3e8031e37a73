package teamplayer

import "context"

// Repository describes team membership reads from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]TeamPlayer, error)
}
