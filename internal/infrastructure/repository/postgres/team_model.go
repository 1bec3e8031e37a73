package postgres

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

type teamTableModel struct {
	ID        string     `db:"id"`
	OrgID     int64      `db:"org_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		OrgID:     m.OrgID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func teamModelFromDomain(item team.Team) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		OrgID:     item.OrgID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}

type teamPlayerTableModel struct {
	TeamID   string    `db:"team_id"`
	PlayerID int64     `db:"player_id"`
	JoinDate time.Time `db:"join_date"`
}

func (m teamPlayerTableModel) toDomain() teamplayer.TeamPlayer {
	return teamplayer.TeamPlayer{
		TeamID:   m.TeamID,
		PlayerID: m.PlayerID,
		JoinDate: m.JoinDate.UTC(),
	}
}

func teamPlayerModelFromDomain(item teamplayer.TeamPlayer) teamPlayerTableModel {
	return teamPlayerTableModel{
		TeamID:   item.TeamID,
		PlayerID: item.PlayerID,
		JoinDate: item.JoinDate,
	}
}
