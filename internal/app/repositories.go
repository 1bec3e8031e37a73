package app

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skauts-stats/external/skautsapi"
	"github.com/riskibarqy/skauts-stats/internal/config"
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
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

// Repositories is the entity fetcher set the services read from.
type Repositories struct {
	Organizations organization.Repository
	Players       player.Repository
	Teams         team.Repository
	TeamPlayers   teamplayer.Repository
	Matches       match.Repository
	Championships championship.Repository
	Events        event.Repository
	EventTypes    eventtype.Repository
	Roles         role.Repository
	Prizes        prize.Repository
}

func memoryRepositories(data memory.Dataset) Repositories {
	return Repositories{
		Organizations: memory.NewOrganizationRepository(data.Organizations),
		Players:       memory.NewPlayerRepository(data.Players),
		Teams:         memory.NewTeamRepository(data.Teams),
		TeamPlayers:   memory.NewTeamPlayerRepository(data.TeamPlayers),
		Matches:       memory.NewMatchRepository(data.Matches),
		Championships: memory.NewChampionshipRepository(data.Championships),
		Events:        memory.NewEventRepository(data.Events),
		EventTypes:    memory.NewEventTypeRepository(data.EventTypes),
		Roles:         memory.NewRoleRepository(data.Roles),
		Prizes:        memory.NewPrizeRepository(data.PlayerPrizes, data.PrizeTypes),
	}
}

func postgresRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Organizations: postgres.NewOrganizationRepository(db),
		Players:       postgres.NewPlayerRepository(db),
		Teams:         postgres.NewTeamRepository(db),
		TeamPlayers:   postgres.NewTeamPlayerRepository(db),
		Matches:       postgres.NewMatchRepository(db),
		Championships: postgres.NewChampionshipRepository(db),
		Events:        postgres.NewEventRepository(db),
		EventTypes:    postgres.NewEventTypeRepository(db),
		Roles:         postgres.NewRoleRepository(db),
		Prizes:        postgres.NewPrizeRepository(db),
	}
}

func apiRepositories(cfg config.Config, logger *logging.Logger, onStateChange resilience.StateListener) Repositories {
	client := skautsapi.NewClient(skautsapi.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.SkautsAPITimeout},
		BaseURL:    cfg.SkautsAPIBaseURL,
		Token:      cfg.SkautsAPIToken,
		Timeout:    cfg.SkautsAPITimeout,
		MaxRetries: cfg.SkautsAPIMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SkautsAPICircuitEnabled,
			FailureThreshold: cfg.SkautsAPICircuitFailures,
			OpenTimeout:      cfg.SkautsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SkautsAPICircuitHalfOpenMax,
		},
		OnCircuitStateChange: onStateChange,
	})

	return Repositories{
		Organizations: skautsapi.NewOrganizationRepository(client),
		Players:       skautsapi.NewPlayerRepository(client),
		Teams:         skautsapi.NewTeamRepository(client),
		TeamPlayers:   skautsapi.NewTeamPlayerRepository(client),
		Matches:       skautsapi.NewMatchRepository(client),
		Championships: skautsapi.NewChampionshipRepository(client),
		Events:        skautsapi.NewEventRepository(client),
		EventTypes:    skautsapi.NewEventTypeRepository(client),
		Roles:         skautsapi.NewRoleRepository(client),
		Prizes:        skautsapi.NewPrizeRepository(client),
	}
}
