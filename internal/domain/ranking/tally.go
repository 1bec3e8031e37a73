package ranking

import "github.com/riskibarqy/skauts-stats/internal/domain/event"

// GoalTally splits a match's goals between its two sides.
type GoalTally struct {
	TeamA        int
	TeamB        int
	Unattributed int
}

func (t GoalTally) Total() int {
	return t.TeamA + t.TeamB + t.Unattributed
}

// TallyGoals attributes each goal event to the side whose roster contains the
// scorer. Scorers found in neither roster, or in both, are unattributed.
// Membership is the rosters' current state, not the state at match time.
func TallyGoals(events []event.Event, canonical CanonicalTypes, rosterA, rosterB map[int64]struct{}) GoalTally {
	var out GoalTally
	if !canonical.HasGoal {
		return out
	}

	for _, item := range events {
		if item.EventTypeID != canonical.GoalTypeID {
			continue
		}
		_, inA := rosterA[item.PlayerID]
		_, inB := rosterB[item.PlayerID]
		switch {
		case inA && !inB:
			out.TeamA++
		case inB && !inA:
			out.TeamB++
		default:
			out.Unattributed++
		}
	}
	return out
}
