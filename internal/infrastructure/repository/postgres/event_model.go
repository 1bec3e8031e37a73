package postgres

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/event"
)

type eventTableModel struct {
	ID          int64     `db:"id"`
	MatchID     int64     `db:"match_id"`
	PlayerID    int64     `db:"player_id"`
	EventTypeID int64     `db:"event_type_id"`
	EventTime   time.Time `db:"event_time"`
}

func (m eventTableModel) toDomain() event.Event {
	return event.Event{
		ID:          m.ID,
		MatchID:     m.MatchID,
		PlayerID:    m.PlayerID,
		EventTypeID: m.EventTypeID,
		EventTime:   m.EventTime.UTC(),
	}
}

func eventModelFromDomain(item event.Event) eventTableModel {
	return eventTableModel{
		ID:          item.ID,
		MatchID:     item.MatchID,
		PlayerID:    item.PlayerID,
		EventTypeID: item.EventTypeID,
		EventTime:   item.EventTime,
	}
}

type eventTypeTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
