package enrichment

import (
	"testing"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

func TestIndex_LastWriteWins(t *testing.T) {
	t.Parallel()

	got := PlayersByID([]player.Player{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "other"},
		{ID: 1, Name: "second"},
	})
	if len(got) != 2 {
		t.Fatalf("unexpected map size: %d", len(got))
	}
	if got[1].Name != "second" {
		t.Fatalf("expected last write to win, got=%s", got[1].Name)
	}
}

func TestEnrichEvents_ResolvesAndClassifies(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.March, 1, 15, 0, 0, 0, time.UTC)
	events := []event.Event{
		{ID: 10, MatchID: 5, PlayerID: 1, EventTypeID: 100, EventTime: kickoff.Add(12 * time.Minute)},
		{ID: 11, MatchID: 5, PlayerID: 99, EventTypeID: 101, EventTime: kickoff.Add(30 * time.Minute)},
		{ID: 12, MatchID: 5, PlayerID: 1, EventTypeID: 999, EventTime: kickoff.Add(40 * time.Minute)},
	}
	players := PlayersByID([]player.Player{{ID: 1, Name: "Ana", ImagePath: "/img/ana.png"}})
	types := EventTypesByID([]eventtype.EventType{
		{ID: 100, Name: "Gol"},
		{ID: 101, Name: "Cartão Amarelo"},
	})

	got := EnrichEvents(events, players, types, eventcategory.Default())
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got=%d", len(got))
	}

	if got[0].PlayerName != "Ana" || got[0].PlayerImage != "/img/ana.png" || got[0].Category != eventcategory.Goal {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[0].Icon != eventcategory.Goal.Presentation().Icon {
		t.Fatalf("expected goal icon, got=%s", got[0].Icon)
	}

	if got[1].PlayerName != UnknownPlayer || got[1].PlayerFound {
		t.Fatalf("expected dangling player sentinel, got=%+v", got[1])
	}
	if got[1].Category != eventcategory.YellowCard {
		t.Fatalf("expected yellow card, got=%s", got[1].Category)
	}

	if got[2].EventTypeName != UnknownEvent || got[2].TypeFound || got[2].Category != eventcategory.Unknown {
		t.Fatalf("expected dangling event type sentinel, got=%+v", got[2])
	}
	if got[2].Color != eventcategory.Unknown.Presentation().Color {
		t.Fatalf("expected unknown color hint, got=%s", got[2].Color)
	}

	if events[1].PlayerID != 99 {
		t.Fatalf("input events must not be mutated")
	}
}

func TestEnrichEvents_EmptyMaps(t *testing.T) {
	t.Parallel()

	got := EnrichEvents([]event.Event{{ID: 1, PlayerID: 7, EventTypeID: 8}}, nil, nil, nil)
	if len(got) != 1 {
		t.Fatalf("expected one row, got=%d", len(got))
	}
	if got[0].PlayerName != UnknownPlayer || got[0].EventTypeName != UnknownEvent {
		t.Fatalf("expected sentinels for nil maps, got=%+v", got[0])
	}
}

func TestEnrichRoster(t *testing.T) {
	t.Parallel()

	joined := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	rows := []teamplayer.TeamPlayer{
		{TeamID: "t1", PlayerID: 1, JoinDate: joined},
		{TeamID: "t1", PlayerID: 2, JoinDate: joined},
	}
	players := PlayersByID([]player.Player{{ID: 1, Name: "Ana", RoleID: 3}})
	roles := RolesByID([]role.Role{{ID: 3, Acronym: "ATA", Name: "Atacante"}})

	got := EnrichRoster(rows, players, roles)
	if len(got) != 2 {
		t.Fatalf("expected both rows, got=%d", len(got))
	}
	if !got[0].Resolved || got[0].PlayerName != "Ana" || got[0].RoleName != "Atacante" {
		t.Fatalf("unexpected resolved row: %+v", got[0])
	}
	if got[1].Resolved || got[1].PlayerName != UnknownPlayer || got[1].Player.ID != 2 {
		t.Fatalf("unexpected unresolved row: %+v", got[1])
	}
	if !got[1].Membership.JoinDate.Equal(joined) {
		t.Fatalf("membership should be carried over")
	}
}

func TestEnrichMatches(t *testing.T) {
	t.Parallel()

	champID := int64(4)
	missingChamp := int64(77)
	matches := []match.Match{
		{ID: 1, TeamAID: "a", TeamBID: "b", ChampionshipID: &champID},
		{ID: 2, TeamAID: "a", TeamBID: "ghost"},
		{ID: 3, TeamAID: "", TeamBID: "b", ChampionshipID: &missingChamp},
	}
	teams := TeamsByID([]team.Team{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Bravo"}})
	champs := ChampionshipsByID([]championship.Championship{{ID: 4, Name: "Copa"}})

	got := EnrichMatches(matches, teams, champs)
	if got[0].TeamAName != "Alpha" || got[0].TeamBName != "Bravo" || got[0].ChampionshipName != "Copa" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].TeamBName != UnknownTeam || got[1].ChampionshipName != FriendlyChampionship {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
	if got[2].TeamAName != NoTeam || got[2].ChampionshipName != UnknownChampionship {
		t.Fatalf("unexpected third row: %+v", got[2])
	}
}

func TestEnrichPrizes_FiltersToOrganizationPlayers(t *testing.T) {
	t.Parallel()

	prizes := []prize.PlayerPrize{
		{ID: 1, PlayerID: 1, PrizeTypeID: 10},
		{ID: 2, PlayerID: 500, PrizeTypeID: 10},
		{ID: 3, PlayerID: 1, PrizeTypeID: 11},
	}
	players := PlayersByID([]player.Player{{ID: 1, Name: "Ana", OrgID: 1}})
	types := PrizeTypesByID([]prize.Type{{ID: 10, Name: "Artilheiro"}})

	got := EnrichPrizes(prizes, players, types)
	if len(got) != 2 {
		t.Fatalf("expected prizes of other organizations to be dropped, got=%d", len(got))
	}
	if got[0].PrizeTypeName != "Artilheiro" || got[0].PlayerName != "Ana" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].PrizeTypeName != UnknownPrizeType {
		t.Fatalf("expected unknown prize type sentinel, got=%s", got[1].PrizeTypeName)
	}
}
