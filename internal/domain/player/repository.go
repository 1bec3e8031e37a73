package player

import "context"

// Repository describes player reads from use cases.
type Repository interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
}
