package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	qb "github.com/riskibarqy/skauts-stats/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByPlayer(ctx context.Context, playerID int64) ([]event.Event, error) {
	return r.list(ctx, qb.Eq("player_id", playerID), fmt.Sprintf("player_id=%d", playerID))
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	return r.list(ctx, qb.Eq("match_id", matchID), fmt.Sprintf("match_id=%d", matchID))
}

func (r *EventRepository) list(ctx context.Context, filter qb.Condition, label string) ([]event.Event, error) {
	query, args, err := qb.Select("id", "match_id", "player_id", "event_type_id", "event_time").From("events").
		Where(filter).
		OrderBy("event_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select events %s: %w", label, err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

type EventTypeRepository struct {
	db *sqlx.DB
}

func NewEventTypeRepository(db *sqlx.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

// List keeps catalogue order by id; canonical goal and assist types are the
// first matching entries.
func (r *EventTypeRepository) List(ctx context.Context) ([]eventtype.EventType, error) {
	query, args, err := qb.Select("id", "name").From("event_types").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select event types query: %w", err)
	}

	var rows []eventTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select event types: %w", err)
	}

	out := make([]eventtype.EventType, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventtype.EventType{ID: row.ID, Name: row.Name})
	}

	return out, nil
}
