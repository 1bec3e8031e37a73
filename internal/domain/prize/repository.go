package prize

import "context"

// Repository describes prize reads from use cases. Prizes are not organization
// scoped by the API, callers filter them by player.
type Repository interface {
	ListPrizes(ctx context.Context) ([]PlayerPrize, error)
	ListTypes(ctx context.Context) ([]Type, error)
}
