package teamplayer

import "time"

// TeamPlayer is a current-state membership row between a team and a player.
type TeamPlayer struct {
	TeamID   string
	PlayerID int64
	JoinDate time.Time
}
