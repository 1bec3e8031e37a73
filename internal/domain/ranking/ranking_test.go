package ranking

import (
	"testing"

	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
)

var catalogue = []eventtype.EventType{
	{ID: 1, Name: "Cartão Amarelo"},
	{ID: 2, Name: "Gol"},
	{ID: 3, Name: "Assistência"},
	{ID: 4, Name: "Goal"},
}

func goals(playerID int64, n int) []event.Event {
	out := make([]event.Event, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, event.Event{PlayerID: playerID, EventTypeID: 2})
	}
	return out
}

func TestResolveCanonicalTypes_PicksFirstMatch(t *testing.T) {
	t.Parallel()

	got := ResolveCanonicalTypes(catalogue, eventcategory.Default())
	if !got.HasGoal || got.GoalTypeID != 2 {
		t.Fatalf("expected first goal type id=2, got=%+v", got)
	}
	if !got.HasAssist || got.AssistTypeID != 3 {
		t.Fatalf("expected assist type id=3, got=%+v", got)
	}
}

func TestRank_ZeroPlayers(t *testing.T) {
	t.Parallel()

	got := Rank(nil, goals(1, 3), catalogue, eventcategory.Default(), DefaultTopN)
	if len(got.TopScorers) != 0 || len(got.TopAssisters) != 0 || got.TotalGoals != 0 {
		t.Fatalf("expected empty result, got=%+v", got)
	}
	if got.TopScorers == nil || got.TopAssisters == nil {
		t.Fatalf("expected non-nil empty rankings")
	}
}

func TestRank_StableTies(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	events := append(append(goals(3, 1), goals(2, 2)...), goals(1, 2)...)

	got := Rank(players, events, catalogue, eventcategory.Default(), DefaultTopN)
	want := []string{"A", "B", "C"}
	if len(got.TopScorers) != len(want) {
		t.Fatalf("unexpected scorer count: %d", len(got.TopScorers))
	}
	for i, name := range want {
		if got.TopScorers[i].Player.Name != name {
			t.Fatalf("position %d: got=%s want=%s", i, got.TopScorers[i].Player.Name, name)
		}
	}
	if got.TotalGoals != 5 {
		t.Fatalf("unexpected total goals: %d", got.TotalGoals)
	}
}

func TestRank_TopNAndIndependentRankings(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 0, 7)
	for id := int64(1); id <= 7; id++ {
		players = append(players, player.Player{ID: id})
	}
	events := append(goals(7, 4), goals(6, 1)...)
	events = append(events,
		event.Event{PlayerID: 1, EventTypeID: 3},
		event.Event{PlayerID: 1, EventTypeID: 3},
		event.Event{PlayerID: 5, EventTypeID: 3},
		event.Event{PlayerID: 5, EventTypeID: 4},
		event.Event{PlayerID: 5, EventTypeID: 1},
	)

	got := Rank(players, events, catalogue, eventcategory.Default(), DefaultTopN)
	if len(got.TopScorers) != DefaultTopN || len(got.TopAssisters) != DefaultTopN {
		t.Fatalf("expected top-%d lists, got=%d/%d", DefaultTopN, len(got.TopScorers), len(got.TopAssisters))
	}
	if got.TopScorers[0].Player.ID != 7 || got.TopScorers[1].Player.ID != 6 {
		t.Fatalf("unexpected scorer order: %+v", got.TopScorers[:2])
	}
	if got.TopScorers[2].Player.ID != 1 {
		t.Fatalf("expected zero-goal ties in input order, got=%d", got.TopScorers[2].Player.ID)
	}
	if got.TopAssisters[0].Player.ID != 1 || got.TopAssisters[1].Player.ID != 5 {
		t.Fatalf("unexpected assister order: %+v", got.TopAssisters[:2])
	}
	// Only the first goal type in the catalogue counts.
	if got.TotalGoals != 5 {
		t.Fatalf("unexpected total goals: %d", got.TotalGoals)
	}
}

func TestRank_NoRecognizableTypesYieldsZeroCounts(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: 1}, {ID: 2}}
	types := []eventtype.EventType{{ID: 2, Name: "Falta"}}

	got := Rank(players, goals(1, 3), types, eventcategory.Default(), DefaultTopN)
	if got.TotalGoals != 0 {
		t.Fatalf("expected zero goals, got=%d", got.TotalGoals)
	}
	if len(got.TopScorers) != 2 || got.TopScorers[0].Goals != 0 {
		t.Fatalf("expected zero-valued rankings, got=%+v", got.TopScorers)
	}
}

func TestTally_IgnoresForeignPlayersAndDuplicates(t *testing.T) {
	t.Parallel()

	players := []player.Player{{ID: 1}, {ID: 1}, {ID: 2}}
	events := append(goals(1, 1), goals(99, 5)...)

	rows := Tally(players, events, ResolveCanonicalTypes(catalogue, nil))
	if len(rows) != 2 {
		t.Fatalf("expected duplicate player collapsed, got=%d rows", len(rows))
	}
	if rows[0].Goals != 1 || rows[1].Goals != 0 {
		t.Fatalf("unexpected tally: %+v", rows)
	}
}
