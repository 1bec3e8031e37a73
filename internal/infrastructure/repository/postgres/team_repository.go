package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByOrganization(ctx context.Context, orgID int64) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("org_id", orgID),
			qb.NotDeleted(),
		).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by organization query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by organization: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("id", teamID),
			qb.NotDeleted(),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team id=%s: %w", teamID, err)
	}

	return row.toDomain(), true, nil
}

type TeamPlayerRepository struct {
	db *sqlx.DB
}

func NewTeamPlayerRepository(db *sqlx.DB) *TeamPlayerRepository {
	return &TeamPlayerRepository{db: db}
}

func (r *TeamPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]teamplayer.TeamPlayer, error) {
	query, args, err := qb.Select("team_id", "player_id", "join_date").From("team_players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("join_date", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team players query: %w", err)
	}

	var rows []teamPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team players team_id=%s: %w", teamID, err)
	}

	out := make([]teamplayer.TeamPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
