package event

import "time"

// Event is one timestamped occurrence of a classified action by a player in a match.
type Event struct {
	ID          int64
	MatchID     int64
	PlayerID    int64
	EventTypeID int64
	EventTime   time.Time
}
