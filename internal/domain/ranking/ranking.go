// Package ranking aggregates classified event counts per player and produces
// top-N rankings. All functions are pure over the snapshots passed in.
package ranking

import (
	"sort"

	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
)

const DefaultTopN = 5

type PlayerRanking struct {
	Player  player.Player
	Goals   int
	Assists int
}

type Result struct {
	TopScorers   []PlayerRanking
	TopAssisters []PlayerRanking
	TotalGoals   int
}

// Empty is the result reported when rankings cannot be computed.
func Empty() Result {
	return Result{
		TopScorers:   []PlayerRanking{},
		TopAssisters: []PlayerRanking{},
	}
}

// CanonicalTypes holds the event type ids counted as goals and assists.
type CanonicalTypes struct {
	GoalTypeID   int64
	HasGoal      bool
	AssistTypeID int64
	HasAssist    bool
}

// ResolveCanonicalTypes picks the first event type classified as Goal and the
// first classified as Assist, in catalogue order.
func ResolveCanonicalTypes(types []eventtype.EventType, classifier *eventcategory.Classifier) CanonicalTypes {
	var out CanonicalTypes
	for _, t := range types {
		if out.HasGoal && out.HasAssist {
			break
		}
		switch classifier.Classify(t.Name) {
		case eventcategory.Goal:
			if !out.HasGoal {
				out.GoalTypeID = t.ID
				out.HasGoal = true
			}
		case eventcategory.Assist:
			if !out.HasAssist {
				out.AssistTypeID = t.ID
				out.HasAssist = true
			}
		}
	}
	return out
}

// Tally counts goals and assists per player. Rows follow the players order;
// repeated player ids are kept once and events of players outside the list are
// ignored.
func Tally(players []player.Player, events []event.Event, canonical CanonicalTypes) []PlayerRanking {
	index := make(map[int64]int, len(players))
	rows := make([]PlayerRanking, 0, len(players))
	for _, p := range players {
		if _, dup := index[p.ID]; dup {
			continue
		}
		index[p.ID] = len(rows)
		rows = append(rows, PlayerRanking{Player: p})
	}

	for _, item := range events {
		pos, ok := index[item.PlayerID]
		if !ok {
			continue
		}
		if canonical.HasGoal && item.EventTypeID == canonical.GoalTypeID {
			rows[pos].Goals++
		}
		if canonical.HasAssist && item.EventTypeID == canonical.AssistTypeID {
			rows[pos].Assists++
		}
	}

	return rows
}

// Rank computes both top-N rankings and the total goal count.
func Rank(
	players []player.Player,
	events []event.Event,
	types []eventtype.EventType,
	classifier *eventcategory.Classifier,
	topN int,
) Result {
	if len(players) == 0 {
		return Empty()
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	rows := Tally(players, events, ResolveCanonicalTypes(types, classifier))

	total := 0
	for _, row := range rows {
		total += row.Goals
	}

	return Result{
		TopScorers:   Top(rows, topN, func(r PlayerRanking) int { return r.Goals }),
		TopAssisters: Top(rows, topN, func(r PlayerRanking) int { return r.Assists }),
		TotalGoals:   total,
	}
}

// Top returns the first n rows sorted by key descending. Ties keep input order.
func Top(rows []PlayerRanking, n int, key func(PlayerRanking) int) []PlayerRanking {
	sorted := append([]PlayerRanking(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []PlayerRanking{}
	}
	return sorted
}
