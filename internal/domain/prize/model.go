package prize

import "time"

// Type is an entry of the prize catalogue.
type Type struct {
	ID   int64
	Name string
}

// PlayerPrize records a prize awarded to a player.
type PlayerPrize struct {
	ID          int64
	PlayerID    int64
	PrizeTypeID int64
	ReceiveDate time.Time
}
