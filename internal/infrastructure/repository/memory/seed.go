package memory

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

const (
	OrgIDVarzeaUnidos int64 = 1
	OrgIDAmigosDaBola int64 = 2

	TeamIDAzul   = "b6f1c2f0-0001-4d7e-9a10-3f5c1e2a0001"
	TeamIDBranco = "b6f1c2f0-0002-4d7e-9a10-3f5c1e2a0002"
	TeamIDAmigos = "b6f1c2f0-0003-4d7e-9a10-3f5c1e2a0003"

	ChampionshipIDCopaVerao int64 = 1
)

var seedCreatedAt = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

// Dataset is a complete, consistent set of console entities.
type Dataset struct {
	Organizations []organization.Organization
	Roles         []role.Role
	Players       []player.Player
	Teams         []team.Team
	TeamPlayers   []teamplayer.TeamPlayer
	Championships []championship.Championship
	Matches       []match.Match
	EventTypes    []eventtype.EventType
	Events        []event.Event
	PrizeTypes    []prize.Type
	PlayerPrizes  []prize.PlayerPrize
}

func SeedDataset() Dataset {
	return Dataset{
		Organizations: SeedOrganizations(),
		Roles:         SeedRoles(),
		Players:       SeedPlayers(),
		Teams:         SeedTeams(),
		TeamPlayers:   SeedTeamPlayers(),
		Championships: SeedChampionships(),
		Matches:       SeedMatches(),
		EventTypes:    SeedEventTypes(),
		Events:        SeedEvents(),
		PrizeTypes:    SeedPrizeTypes(),
		PlayerPrizes:  SeedPlayerPrizes(),
	}
}

func SeedOrganizations() []organization.Organization {
	return []organization.Organization{
		{ID: OrgIDVarzeaUnidos, Name: "Várzea Unidos", ImagePath: "orgs/varzea-unidos.png", CreatedAt: seedCreatedAt},
		{ID: OrgIDAmigosDaBola, Name: "Amigos da Bola", ImagePath: "orgs/amigos-da-bola.png", CreatedAt: seedCreatedAt},
	}
}

func SeedRoles() []role.Role {
	return []role.Role{
		{ID: 1, Acronym: "GOL", Name: "Goleiro"},
		{ID: 2, Acronym: "ZAG", Name: "Zagueiro"},
		{ID: 3, Acronym: "MEI", Name: "Meio-campo"},
		{ID: 4, Acronym: "ATA", Name: "Atacante"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, OrgID: OrgIDVarzeaUnidos, RoleID: 1, Name: "Marcos Souza", ImagePath: "players/1.png", CreatedAt: seedCreatedAt},
		{ID: 2, OrgID: OrgIDVarzeaUnidos, RoleID: 2, Name: "Rafael Lima", ImagePath: "players/2.png", CreatedAt: seedCreatedAt},
		{ID: 3, OrgID: OrgIDVarzeaUnidos, RoleID: 3, Name: "Thiago Alves", ImagePath: "players/3.png", CreatedAt: seedCreatedAt},
		{ID: 4, OrgID: OrgIDVarzeaUnidos, RoleID: 4, Name: "Lucas Pereira", ImagePath: "players/4.png", CreatedAt: seedCreatedAt},
		{ID: 5, OrgID: OrgIDVarzeaUnidos, RoleID: 1, Name: "Bruno Costa", ImagePath: "players/5.png", CreatedAt: seedCreatedAt},
		{ID: 6, OrgID: OrgIDVarzeaUnidos, RoleID: 2, Name: "Diego Martins", ImagePath: "players/6.png", CreatedAt: seedCreatedAt},
		{ID: 7, OrgID: OrgIDVarzeaUnidos, RoleID: 3, Name: "Felipe Rocha", ImagePath: "players/7.png", CreatedAt: seedCreatedAt},
		{ID: 8, OrgID: OrgIDVarzeaUnidos, RoleID: 4, Name: "Gabriel Nunes", ImagePath: "players/8.png", CreatedAt: seedCreatedAt},
		{ID: 9, OrgID: OrgIDAmigosDaBola, RoleID: 4, Name: "John Carter", ImagePath: "players/9.png", CreatedAt: seedCreatedAt},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDAzul, OrgID: OrgIDVarzeaUnidos, Name: "Time Azul", CreatedAt: seedCreatedAt},
		{ID: TeamIDBranco, OrgID: OrgIDVarzeaUnidos, Name: "Time Branco", CreatedAt: seedCreatedAt},
		{ID: TeamIDAmigos, OrgID: OrgIDAmigosDaBola, Name: "Amigos FC", CreatedAt: seedCreatedAt},
	}
}

func SeedTeamPlayers() []teamplayer.TeamPlayer {
	joined := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return []teamplayer.TeamPlayer{
		{TeamID: TeamIDAzul, PlayerID: 1, JoinDate: joined},
		{TeamID: TeamIDAzul, PlayerID: 2, JoinDate: joined},
		{TeamID: TeamIDAzul, PlayerID: 3, JoinDate: joined},
		{TeamID: TeamIDAzul, PlayerID: 4, JoinDate: joined},
		{TeamID: TeamIDBranco, PlayerID: 5, JoinDate: joined},
		{TeamID: TeamIDBranco, PlayerID: 6, JoinDate: joined},
		{TeamID: TeamIDBranco, PlayerID: 7, JoinDate: joined},
		{TeamID: TeamIDBranco, PlayerID: 8, JoinDate: joined},
		{TeamID: TeamIDAmigos, PlayerID: 9, JoinDate: joined},
	}
}

func SeedChampionships() []championship.Championship {
	end := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	return []championship.Championship{
		{
			ID:        ChampionshipIDCopaVerao,
			OrgID:     OrgIDVarzeaUnidos,
			Name:      "Copa de Verão",
			StartDate: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
		},
	}
}

func SeedMatches() []match.Match {
	copa := ChampionshipIDCopaVerao
	return []match.Match{
		{
			ID:             1,
			OrgID:          OrgIDVarzeaUnidos,
			TeamAID:        TeamIDAzul,
			TeamBID:        TeamIDBranco,
			Date:           time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC),
			ChampionshipID: &copa,
		},
		{
			ID:             2,
			OrgID:          OrgIDVarzeaUnidos,
			TeamAID:        TeamIDBranco,
			TeamBID:        TeamIDAzul,
			Date:           time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			ChampionshipID: &copa,
		},
		{
			ID:      3,
			OrgID:   OrgIDVarzeaUnidos,
			TeamAID: TeamIDAzul,
			TeamBID: TeamIDBranco,
			Date:    time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC),
		},
	}
}

func SeedEventTypes() []eventtype.EventType {
	return []eventtype.EventType{
		{ID: 1, Name: "Gol"},
		{ID: 2, Name: "Assistência"},
		{ID: 3, Name: "Cartão Amarelo"},
		{ID: 4, Name: "Cartão Vermelho"},
		{ID: 5, Name: "Defesa"},
		{ID: 6, Name: "Falta"},
		{ID: 7, Name: "Substituição"},
	}
}

func SeedEvents() []event.Event {
	at := func(matchDay time.Time, minute int) time.Time {
		return matchDay.Add(time.Duration(minute) * time.Minute)
	}
	m1 := time.Date(2025, 2, 22, 9, 0, 0, 0, time.UTC)
	m2 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	m3 := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)

	return []event.Event{
		{ID: 1, MatchID: 1, PlayerID: 4, EventTypeID: 1, EventTime: at(m1, 12)},
		{ID: 2, MatchID: 1, PlayerID: 3, EventTypeID: 2, EventTime: at(m1, 12)},
		{ID: 3, MatchID: 1, PlayerID: 8, EventTypeID: 1, EventTime: at(m1, 27)},
		{ID: 4, MatchID: 1, PlayerID: 6, EventTypeID: 3, EventTime: at(m1, 33)},
		{ID: 5, MatchID: 1, PlayerID: 4, EventTypeID: 1, EventTime: at(m1, 41)},
		{ID: 6, MatchID: 1, PlayerID: 1, EventTypeID: 5, EventTime: at(m1, 44)},
		{ID: 7, MatchID: 2, PlayerID: 8, EventTypeID: 1, EventTime: at(m2, 5)},
		{ID: 8, MatchID: 2, PlayerID: 7, EventTypeID: 2, EventTime: at(m2, 5)},
		{ID: 9, MatchID: 2, PlayerID: 3, EventTypeID: 1, EventTime: at(m2, 18)},
		{ID: 10, MatchID: 2, PlayerID: 2, EventTypeID: 4, EventTime: at(m2, 36)},
		{ID: 11, MatchID: 3, PlayerID: 4, EventTypeID: 1, EventTime: at(m3, 9)},
		{ID: 12, MatchID: 3, PlayerID: 7, EventTypeID: 6, EventTime: at(m3, 20)},
		{ID: 13, MatchID: 3, PlayerID: 5, EventTypeID: 7, EventTime: at(m3, 30)},
	}
}

func SeedPrizeTypes() []prize.Type {
	return []prize.Type{
		{ID: 1, Name: "Artilheiro"},
		{ID: 2, Name: "Craque da Partida"},
		{ID: 3, Name: "Melhor Goleiro"},
	}
}

func SeedPlayerPrizes() []prize.PlayerPrize {
	return []prize.PlayerPrize{
		{ID: 1, PlayerID: 4, PrizeTypeID: 1, ReceiveDate: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)},
		{ID: 2, PlayerID: 3, PrizeTypeID: 2, ReceiveDate: time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC)},
		{ID: 3, PlayerID: 1, PrizeTypeID: 3, ReceiveDate: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)},
		{ID: 4, PlayerID: 9, PrizeTypeID: 2, ReceiveDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
	}
}
