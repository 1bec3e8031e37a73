package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
)

type EventRepository struct {
	mu       sync.RWMutex
	byPlayer map[int64][]event.Event
	byMatch  map[int64][]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	byPlayer := make(map[int64][]event.Event)
	byMatch := make(map[int64][]event.Event)
	for _, item := range events {
		byPlayer[item.PlayerID] = append(byPlayer[item.PlayerID], item)
		byMatch[item.MatchID] = append(byMatch[item.MatchID], item)
	}

	return &EventRepository{byPlayer: byPlayer, byMatch: byMatch}
}

func (r *EventRepository) ListByPlayer(_ context.Context, playerID int64) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]event.Event(nil), r.byPlayer[playerID]...), nil
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID int64) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]event.Event(nil), r.byMatch[matchID]...), nil
}

type EventTypeRepository struct {
	mu    sync.RWMutex
	items []eventtype.EventType
}

func NewEventTypeRepository(items []eventtype.EventType) *EventTypeRepository {
	return &EventTypeRepository{items: append([]eventtype.EventType(nil), items...)}
}

func (r *EventTypeRepository) List(_ context.Context) ([]eventtype.EventType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]eventtype.EventType, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}
