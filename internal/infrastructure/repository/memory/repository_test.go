package memory

import (
	"context"
	"testing"
)

func TestSeedDataset_ReferencesResolve(t *testing.T) {
	t.Parallel()

	data := SeedDataset()

	players := make(map[int64]int64, len(data.Players))
	for _, p := range data.Players {
		if err := p.Validate(); err != nil {
			t.Fatalf("invalid seeded player %d: %v", p.ID, err)
		}
		players[p.ID] = p.OrgID
	}
	teams := make(map[string]int64, len(data.Teams))
	for _, item := range data.Teams {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid seeded team %s: %v", item.ID, err)
		}
		teams[item.ID] = item.OrgID
	}
	types := make(map[int64]struct{}, len(data.EventTypes))
	for _, item := range data.EventTypes {
		types[item.ID] = struct{}{}
	}
	matches := make(map[int64]struct{}, len(data.Matches))
	for _, m := range data.Matches {
		if err := m.Validate(); err != nil {
			t.Fatalf("invalid seeded match %d: %v", m.ID, err)
		}
		matches[m.ID] = struct{}{}
	}

	for _, row := range data.TeamPlayers {
		if teams[row.TeamID] != players[row.PlayerID] {
			t.Fatalf("membership team=%s player=%d crosses organizations", row.TeamID, row.PlayerID)
		}
	}
	for _, e := range data.Events {
		if _, ok := players[e.PlayerID]; !ok {
			t.Fatalf("event %d references unknown player %d", e.ID, e.PlayerID)
		}
		if _, ok := types[e.EventTypeID]; !ok {
			t.Fatalf("event %d references unknown type %d", e.ID, e.EventTypeID)
		}
		if _, ok := matches[e.MatchID]; !ok {
			t.Fatalf("event %d references unknown match %d", e.ID, e.MatchID)
		}
	}
}

func TestPlayerRepository_ScopesByOrganization(t *testing.T) {
	t.Parallel()

	repo := NewPlayerRepository(SeedPlayers())
	ctx := context.Background()

	items, err := repo.ListByOrganization(ctx, OrgIDAmigosDaBola)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 1 || items[0].ID != 9 {
		t.Fatalf("unexpected players for org %d: %+v", OrgIDAmigosDaBola, items)
	}

	items[0].Name = "mutated"
	again, _ := repo.ListByOrganization(ctx, OrgIDAmigosDaBola)
	if again[0].Name == "mutated" {
		t.Fatalf("expected list to return a copy")
	}

	if _, found, err := repo.GetByID(ctx, 404); err != nil || found {
		t.Fatalf("expected clean miss, found=%v err=%v", found, err)
	}
}

func TestTeamRepository_GetByIDAcrossOrganizations(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())

	item, found, err := repo.GetByID(context.Background(), TeamIDAmigos)
	if err != nil || !found {
		t.Fatalf("get team found=%v err=%v", found, err)
	}
	if item.OrgID != OrgIDAmigosDaBola {
		t.Fatalf("unexpected team org: %d", item.OrgID)
	}
}

func TestEventRepository_Indexes(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(SeedEvents())
	ctx := context.Background()

	byPlayer, err := repo.ListByPlayer(ctx, 4)
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(byPlayer) != 3 {
		t.Fatalf("expected 3 events for player 4, got=%d", len(byPlayer))
	}

	byMatch, err := repo.ListByMatch(ctx, 2)
	if err != nil {
		t.Fatalf("list by match: %v", err)
	}
	if len(byMatch) != 4 {
		t.Fatalf("expected 4 events for match 2, got=%d", len(byMatch))
	}
}
