package organization

import (
	"fmt"
	"time"
)

// Organization is the scoping container every match, player and team belongs to.
type Organization struct {
	ID        int64
	Name      string
	ImagePath string
	CreatedAt time.Time
}

func (o Organization) Validate() error {
	if o.ID <= 0 {
		return fmt.Errorf("organization id is required")
	}
	if o.Name == "" {
		return fmt.Errorf("organization name is required")
	}

	return nil
}
