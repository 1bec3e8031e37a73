package championship

import "context"

// Repository describes championship reads from use cases.
type Repository interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]Championship, error)
}
