package player

import (
	"fmt"
	"time"
)

// Player is an athlete registered in one organization.
type Player struct {
	ID        int64
	Name      string
	OrgID     int64
	RoleID    int64
	Skill     *int
	Physique  *int
	Phone     string
	Email     string
	ImagePath string
	BirthDate *time.Time
	CreatedAt time.Time
}

// BelongsTo reports whether the player is registered in orgID.
func (p Player) BelongsTo(orgID int64) bool {
	return orgID > 0 && p.OrgID == orgID
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.OrgID <= 0 {
		return fmt.Errorf("player organization id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
