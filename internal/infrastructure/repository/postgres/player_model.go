package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/player"
)

type playerTableModel struct {
	ID        int64         `db:"id"`
	OrgID     int64         `db:"org_id"`
	RoleID    int64         `db:"role_id"`
	Name      string        `db:"name"`
	Skill     sql.NullInt32 `db:"skill"`
	Physique  sql.NullInt32 `db:"physique"`
	Phone     string        `db:"phone"`
	Email     string        `db:"email"`
	ImagePath string        `db:"image_path"`
	BirthDate sql.NullTime  `db:"birth_date"`
	CreatedAt time.Time     `db:"created_at"`
	DeletedAt *time.Time    `db:"deleted_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		OrgID:     m.OrgID,
		RoleID:    m.RoleID,
		Skill:     nullIntPtr(m.Skill),
		Physique:  nullIntPtr(m.Physique),
		Phone:     m.Phone,
		Email:     m.Email,
		ImagePath: m.ImagePath,
		BirthDate: nullTimePtr(m.BirthDate),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func playerModelFromDomain(item player.Player) playerTableModel {
	return playerTableModel{
		ID:        item.ID,
		OrgID:     item.OrgID,
		RoleID:    item.RoleID,
		Name:      item.Name,
		Skill:     toNullInt32(item.Skill),
		Physique:  toNullInt32(item.Physique),
		Phone:     item.Phone,
		Email:     item.Email,
		ImagePath: item.ImagePath,
		BirthDate: toNullTime(item.BirthDate),
		CreatedAt: item.CreatedAt,
	}
}
