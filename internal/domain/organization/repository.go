package organization

import "context"

// Repository describes organization lookups from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Organization, bool, error)
}
