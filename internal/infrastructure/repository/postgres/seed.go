package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

const seedConflictSuffix = "ON CONFLICT DO NOTHING"

// BootstrapSeed loads data into an empty replica. It is a no-op once any
// organization exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, data memory.Dataset) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM organizations WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count organizations for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	steps := []struct {
		table string
		rows  []any
	}{
		{"organizations", toRows(data.Organizations, organizationModelFromDomain)},
		{"roles", toRows(data.Roles, func(item role.Role) roleTableModel {
			return roleTableModel{ID: item.ID, Acronym: item.Acronym, Name: item.Name}
		})},
		{"players", toRows(data.Players, playerModelFromDomain)},
		{"teams", toRows(data.Teams, teamModelFromDomain)},
		{"team_players", toRows(data.TeamPlayers, teamPlayerModelFromDomain)},
		{"championships", toRows(data.Championships, championshipModelFromDomain)},
		{"matches", toRows(data.Matches, matchModelFromDomain)},
		{"event_types", toRows(data.EventTypes, func(item eventtype.EventType) eventTypeTableModel {
			return eventTypeTableModel{ID: item.ID, Name: item.Name}
		})},
		{"events", toRows(data.Events, eventModelFromDomain)},
		{"prize_types", toRows(data.PrizeTypes, func(item prize.Type) prizeTypeTableModel {
			return prizeTypeTableModel{ID: item.ID, Name: item.Name}
		})},
		{"player_prizes", toRows(data.PlayerPrizes, playerPrizeModelFromDomain)},
	}

	for _, step := range steps {
		if len(step.rows) == 0 {
			continue
		}
		query, args, err := qb.InsertModels(step.table, step.rows, seedConflictSuffix)
		if err != nil {
			return fmt.Errorf("build seed %s: %w", step.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func toRows[D any, M any](items []D, convert func(D) M) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
