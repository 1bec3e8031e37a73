package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByOrganization(ctx context.Context, orgID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("org_id", orgID),
			qb.NotDeleted(),
		).
		OrderBy("match_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by organization query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by organization: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("id", id),
			qb.NotDeleted(),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) ListByOrganization(ctx context.Context, orgID int64) ([]championship.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(
			qb.Eq("org_id", orgID),
			qb.NotDeleted(),
		).
		OrderBy("start_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships by organization: %w", err)
	}

	out := make([]championship.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
