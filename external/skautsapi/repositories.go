package skautsapi

import (
	"context"
	"fmt"

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

type OrganizationRepository struct{ client *Client }

func NewOrganizationRepository(client *Client) *OrganizationRepository {
	return &OrganizationRepository{client: client}
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (organization.Organization, bool, error) {
	var out organizationDTO
	found, err := r.client.lookup(ctx, pathf("/api/Organizations/%s", id), &out)
	if err != nil || !found {
		return organization.Organization{}, false, err
	}
	return out.toDomain(), true, nil
}

type PlayerRepository struct{ client *Client }

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) ListByOrganization(ctx context.Context, orgID int64) ([]player.Player, error) {
	var out []playerDTO
	if err := r.client.getJSON(ctx, pathf("/api/Players/por-organizacao/%s", orgID), &out); err != nil {
		return nil, fmt.Errorf("list players org_id=%d: %w", orgID, err)
	}
	return mapSlice(out, playerDTO.toDomain), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	var out playerDTO
	found, err := r.client.lookup(ctx, pathf("/api/Players/%s", id), &out)
	if err != nil || !found {
		return player.Player{}, false, err
	}
	return out.toDomain(), true, nil
}

type TeamRepository struct{ client *Client }

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) ListByOrganization(ctx context.Context, orgID int64) ([]team.Team, error) {
	var out []teamDTO
	if err := r.client.getJSON(ctx, pathf("/api/Teams/por-organizacao/%s", orgID), &out); err != nil {
		return nil, fmt.Errorf("list teams org_id=%d: %w", orgID, err)
	}
	return mapSlice(out, teamDTO.toDomain), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	var out teamDTO
	found, err := r.client.lookup(ctx, pathf("/api/Teams/%s", teamID), &out)
	if err != nil || !found {
		return team.Team{}, false, err
	}
	return out.toDomain(), true, nil
}

type TeamPlayerRepository struct{ client *Client }

func NewTeamPlayerRepository(client *Client) *TeamPlayerRepository {
	return &TeamPlayerRepository{client: client}
}

func (r *TeamPlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]teamplayer.TeamPlayer, error) {
	var out []teamPlayerDTO
	if err := r.client.getJSON(ctx, pathf("/api/TeamPlayers/por-time/%s", teamID), &out); err != nil {
		return nil, fmt.Errorf("list team players team_id=%s: %w", teamID, err)
	}
	return mapSlice(out, teamPlayerDTO.toDomain), nil
}

type MatchRepository struct{ client *Client }

func NewMatchRepository(client *Client) *MatchRepository {
	return &MatchRepository{client: client}
}

func (r *MatchRepository) ListByOrganization(ctx context.Context, orgID int64) ([]match.Match, error) {
	var out []matchDTO
	if err := r.client.getJSON(ctx, pathf("/api/Matches/por-organizacao/%s", orgID), &out); err != nil {
		return nil, fmt.Errorf("list matches org_id=%d: %w", orgID, err)
	}
	return mapSlice(out, matchDTO.toDomain), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	var out matchDTO
	found, err := r.client.lookup(ctx, pathf("/api/Matches/%s", id), &out)
	if err != nil || !found {
		return match.Match{}, false, err
	}
	return out.toDomain(), true, nil
}

type ChampionshipRepository struct{ client *Client }

func NewChampionshipRepository(client *Client) *ChampionshipRepository {
	return &ChampionshipRepository{client: client}
}

func (r *ChampionshipRepository) ListByOrganization(ctx context.Context, orgID int64) ([]championship.Championship, error) {
	var out []championshipDTO
	if err := r.client.getJSON(ctx, pathf("/api/Championships/por-organizacao/%s", orgID), &out); err != nil {
		return nil, fmt.Errorf("list championships org_id=%d: %w", orgID, err)
	}
	return mapSlice(out, championshipDTO.toDomain), nil
}

type EventRepository struct{ client *Client }

func NewEventRepository(client *Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) ListByPlayer(ctx context.Context, playerID int64) ([]event.Event, error) {
	var out []eventDTO
	if err := r.client.getJSON(ctx, pathf("/api/Events/por-jogador/%s", playerID), &out); err != nil {
		return nil, fmt.Errorf("list events player_id=%d: %w", playerID, err)
	}
	return mapSlice(out, eventDTO.toDomain), nil
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	var out []eventDTO
	if err := r.client.getJSON(ctx, pathf("/api/Events/por-partida/%s", matchID), &out); err != nil {
		return nil, fmt.Errorf("list events match_id=%d: %w", matchID, err)
	}
	return mapSlice(out, eventDTO.toDomain), nil
}

type EventTypeRepository struct{ client *Client }

func NewEventTypeRepository(client *Client) *EventTypeRepository {
	return &EventTypeRepository{client: client}
}

func (r *EventTypeRepository) List(ctx context.Context) ([]eventtype.EventType, error) {
	var out []eventTypeDTO
	if err := r.client.getJSON(ctx, "/api/EventTypes", &out); err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	return mapSlice(out, eventTypeDTO.toDomain), nil
}

type RoleRepository struct{ client *Client }

func NewRoleRepository(client *Client) *RoleRepository {
	return &RoleRepository{client: client}
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	var out []roleDTO
	if err := r.client.getJSON(ctx, "/api/Roles", &out); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return mapSlice(out, roleDTO.toDomain), nil
}

type PrizeRepository struct{ client *Client }

func NewPrizeRepository(client *Client) *PrizeRepository {
	return &PrizeRepository{client: client}
}

func (r *PrizeRepository) ListPrizes(ctx context.Context) ([]prize.PlayerPrize, error) {
	var out []playerPrizeDTO
	if err := r.client.getJSON(ctx, "/api/PlayersPrizes", &out); err != nil {
		return nil, fmt.Errorf("list player prizes: %w", err)
	}
	return mapSlice(out, playerPrizeDTO.toDomain), nil
}

func (r *PrizeRepository) ListTypes(ctx context.Context) ([]prize.Type, error) {
	var out []prizeTypeDTO
	if err := r.client.getJSON(ctx, "/api/PrizeTypes", &out); err != nil {
		return nil, fmt.Errorf("list prize types: %w", err)
	}
	return mapSlice(out, prizeTypeDTO.toDomain), nil
}

// lookup treats a 404 as a clean miss.
func (c *Client) lookup(ctx context.Context, path string, target any) (bool, error) {
	if err := c.getJSON(ctx, path, target); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", path, err)
	}
	return true, nil
}

var (
	_ organization.Repository = (*OrganizationRepository)(nil)
	_ player.Repository       = (*PlayerRepository)(nil)
	_ team.Repository         = (*TeamRepository)(nil)
	_ teamplayer.Repository   = (*TeamPlayerRepository)(nil)
	_ match.Repository        = (*MatchRepository)(nil)
	_ championship.Repository = (*ChampionshipRepository)(nil)
	_ event.Repository        = (*EventRepository)(nil)
	_ eventtype.Repository    = (*EventTypeRepository)(nil)
	_ role.Repository         = (*RoleRepository)(nil)
	_ prize.Repository        = (*PrizeRepository)(nil)
)
