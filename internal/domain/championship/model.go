package championship

import "time"

// Championship groups matches of one organization into a competition.
type Championship struct {
	ID        int64
	OrgID     int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}
