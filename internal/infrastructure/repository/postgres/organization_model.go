package postgres

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
)

type organizationTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	ImagePath string     `db:"image_path"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m organizationTableModel) toDomain() organization.Organization {
	return organization.Organization{
		ID:        m.ID,
		Name:      m.Name,
		ImagePath: m.ImagePath,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func organizationModelFromDomain(item organization.Organization) organizationTableModel {
	return organizationTableModel{
		ID:        item.ID,
		Name:      item.Name,
		ImagePath: item.ImagePath,
		CreatedAt: item.CreatedAt,
	}
}
