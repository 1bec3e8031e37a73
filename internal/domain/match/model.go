package match

import (
	"fmt"
	"time"
)

// Match is a fixture between two teams of the same organization.
type Match struct {
	ID             int64
	OrgID          int64
	TeamAID        string
	TeamBID        string
	Date           time.Time
	ChampionshipID *int64
}

// IsFriendly reports whether the match is played outside any championship.
func (m Match) IsFriendly() bool {
	return m.ChampionshipID == nil || *m.ChampionshipID <= 0
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if m.OrgID <= 0 {
		return fmt.Errorf("match organization id is required")
	}
	if m.TeamAID == "" || m.TeamBID == "" {
		return fmt.Errorf("match teams are required")
	}

	return nil
}
