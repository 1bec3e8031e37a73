package team

import "context"

// Repository describes team reads from use cases.
type Repository interface {
	ListByOrganization(ctx context.Context, orgID int64) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
}
