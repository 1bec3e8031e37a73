package enrichment

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
)

// EnrichedEvent is an event with its player and event type resolved and classified.
type EnrichedEvent struct {
	Event         event.Event
	PlayerName    string
	PlayerImage   string
	PlayerFound   bool
	EventTypeName string
	TypeFound     bool
	Category      eventcategory.Category
	Icon          string
	Color         string
}

// EnrichEvents resolves each event against the player and event type maps.
// Output order matches input order.
func EnrichEvents(
	events []event.Event,
	players map[int64]player.Player,
	types map[int64]eventtype.EventType,
	classifier *eventcategory.Classifier,
) []EnrichedEvent {
	out := make([]EnrichedEvent, 0, len(events))
	for _, item := range events {
		out = append(out, EnrichEvent(item, players, types, classifier))
	}
	return out
}

func EnrichEvent(
	item event.Event,
	players map[int64]player.Player,
	types map[int64]eventtype.EventType,
	classifier *eventcategory.Classifier,
) EnrichedEvent {
	row := EnrichedEvent{
		Event:         item,
		PlayerName:    UnknownPlayer,
		EventTypeName: UnknownEvent,
		Category:      eventcategory.Unknown,
	}

	if p, ok := players[item.PlayerID]; ok {
		row.PlayerName = p.Name
		row.PlayerImage = p.ImagePath
		row.PlayerFound = true
	}
	if t, ok := types[item.EventTypeID]; ok {
		row.EventTypeName = t.Name
		row.TypeFound = true
		row.Category = classifier.Classify(t.Name)
	}

	hints := row.Category.Presentation()
	row.Icon = hints.Icon
	row.Color = hints.Color
	return row
}
