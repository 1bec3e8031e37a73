package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	query, args, err := qb.Select("id", "acronym", "name").From("roles").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roles query: %w", err)
	}

	var rows []roleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}

	out := make([]role.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, role.Role{ID: row.ID, Acronym: row.Acronym, Name: row.Name})
	}
	return out, nil
}

type PrizeRepository struct {
	db *sqlx.DB
}

func NewPrizeRepository(db *sqlx.DB) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func (r *PrizeRepository) ListPrizes(ctx context.Context) ([]prize.PlayerPrize, error) {
	query, args, err := qb.Select("id", "player_id", "prize_type_id", "receive_date").From("player_prizes").
		OrderBy("receive_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player prizes query: %w", err)
	}

	var rows []playerPrizeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player prizes: %w", err)
	}

	out := make([]prize.PlayerPrize, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PrizeRepository) ListTypes(ctx context.Context) ([]prize.Type, error) {
	query, args, err := qb.Select("id", "name").From("prize_types").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select prize types query: %w", err)
	}

	var rows []prizeTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select prize types: %w", err)
	}

	out := make([]prize.Type, 0, len(rows))
	for _, row := range rows {
		out = append(out, prize.Type{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
