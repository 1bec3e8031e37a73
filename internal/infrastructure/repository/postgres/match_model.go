package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
)

type matchTableModel struct {
	ID             int64         `db:"id"`
	OrgID          int64         `db:"org_id"`
	TeamAID        string        `db:"team_a_id"`
	TeamBID        string        `db:"team_b_id"`
	MatchDate      time.Time     `db:"match_date"`
	ChampionshipID sql.NullInt64 `db:"championship_id"`
	DeletedAt      *time.Time    `db:"deleted_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:             m.ID,
		OrgID:          m.OrgID,
		TeamAID:        m.TeamAID,
		TeamBID:        m.TeamBID,
		Date:           m.MatchDate.UTC(),
		ChampionshipID: nullInt64Ptr(m.ChampionshipID),
	}
}

func matchModelFromDomain(item match.Match) matchTableModel {
	return matchTableModel{
		ID:             item.ID,
		OrgID:          item.OrgID,
		TeamAID:        item.TeamAID,
		TeamBID:        item.TeamBID,
		MatchDate:      item.Date,
		ChampionshipID: toNullInt64(item.ChampionshipID),
	}
}

type championshipTableModel struct {
	ID        int64        `db:"id"`
	OrgID     int64        `db:"org_id"`
	Name      string       `db:"name"`
	StartDate time.Time    `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	DeletedAt *time.Time   `db:"deleted_at"`
}

func (m championshipTableModel) toDomain() championship.Championship {
	return championship.Championship{
		ID:        m.ID,
		OrgID:     m.OrgID,
		Name:      m.Name,
		StartDate: m.StartDate.UTC(),
		EndDate:   nullTimePtr(m.EndDate),
	}
}

func championshipModelFromDomain(item championship.Championship) championshipTableModel {
	return championshipTableModel{
		ID:        item.ID,
		OrgID:     item.OrgID,
		Name:      item.Name,
		StartDate: item.StartDate,
		EndDate:   toNullTime(item.EndDate),
	}
}
