package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

type OrganizationRepository struct {
	db *sqlx.DB
}

func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (organization.Organization, bool, error) {
	query, args, err := qb.Select("*").From("organizations").
		Where(
			qb.Eq("id", id),
			qb.NotDeleted(),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return organization.Organization{}, false, fmt.Errorf("build select organization query: %w", err)
	}

	var row organizationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return organization.Organization{}, false, nil
		}
		return organization.Organization{}, false, fmt.Errorf("select organization id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}
