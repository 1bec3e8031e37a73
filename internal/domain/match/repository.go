package match

import "context"

// Repository describes match reads from use cases.
type Repository interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
}
