package team

import (
	"fmt"
	"time"
)

// Team is a squad inside an organization. Team ids are opaque strings.
type Team struct {
	ID        string
	OrgID     int64
	Name      string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.OrgID <= 0 {
		return fmt.Errorf("team organization id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
