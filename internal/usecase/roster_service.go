package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/enrichment"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

// TeamRoster is one team's resolved roster. When the membership rows could not
// be fetched Available is false and Entries is empty.
type TeamRoster struct {
	Team      team.Team
	Entries   []enrichment.RosterEntry
	Available bool
	Error     string
}

type RosterService struct {
	teamRepo       team.Repository
	teamPlayerRepo teamplayer.Repository
	playerRepo     player.Repository
	roleRepo       role.Repository
	opts           ComputeOptions
}

func NewRosterService(
	teamRepo team.Repository,
	teamPlayerRepo teamplayer.Repository,
	playerRepo player.Repository,
	roleRepo role.Repository,
	opts ComputeOptions,
) *RosterService {
	return &RosterService{
		teamRepo:       teamRepo,
		teamPlayerRepo: teamPlayerRepo,
		playerRepo:     playerRepo,
		roleRepo:       roleRepo,
		opts:           opts.normalize(),
	}
}

// TeamRoster builds the roster of a single team. Unlike the organization view
// a membership fetch failure fails the request, since there is nothing else to
// show.
func (s *RosterService) TeamRoster(ctx context.Context, teamID string) (TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.TeamRoster", attrTeamID.String(teamID))
	defer span.End()

	if teamID == "" {
		return TeamRoster{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewTeamRoster, teamID, func(ctx context.Context, passID string) (TeamRoster, error) {
		var (
			item  team.Team
			found bool
			roles map[int64]role.Role
		)
		err := forkJoin(ctx,
			func(ctx context.Context) error {
				var err error
				item, found, err = s.teamRepo.GetByID(ctx, teamID)
				if err != nil {
					return fmt.Errorf("get team: %w", err)
				}
				return nil
			},
			func(ctx context.Context) error {
				roles = s.roleCatalogue(ctx, passID)
				return nil
			},
		)
		if err != nil {
			return TeamRoster{}, fmt.Errorf("%w: team roster batch: %w", ErrDependencyUnavailable, err)
		}
		if !found {
			return TeamRoster{}, fmt.Errorf("%w: team id=%s", ErrNotFound, teamID)
		}

		roster := s.buildRoster(ctx, item, roles, passID)
		if !roster.Available {
			return TeamRoster{}, fmt.Errorf("%w: team id=%s: %s", ErrDependencyUnavailable, teamID, roster.Error)
		}
		return roster, nil
	})
}

// OrganizationRosters builds every team roster of an organization. Each team
// is isolated: one team's failure is reported on that team only.
func (s *RosterService) OrganizationRosters(ctx context.Context, orgID int64) ([]TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.OrganizationRosters", attrOrganizationID.Int64(orgID))
	defer span.End()

	if orgID <= 0 {
		return nil, fmt.Errorf("%w: organization id must be positive", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewOrgRosters, strconv.FormatInt(orgID, 10), func(ctx context.Context, passID string) ([]TeamRoster, error) {
		var (
			teams []team.Team
			roles map[int64]role.Role
		)
		err := forkJoin(ctx,
			func(ctx context.Context) error {
				var err error
				teams, err = s.teamRepo.ListByOrganization(ctx, orgID)
				if err != nil {
					return fmt.Errorf("list teams: %w", err)
				}
				return nil
			},
			func(ctx context.Context) error {
				roles = s.roleCatalogue(ctx, passID)
				return nil
			},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: organization rosters batch: %w", ErrDependencyUnavailable, err)
		}

		out := make([]TeamRoster, len(teams))
		err = fanOut(ctx, s.opts.Workers, teams, func(ctx context.Context, i int, item team.Team) {
			out[i] = s.buildRoster(ctx, item, roles, passID)
		})
		if err != nil {
			return nil, fmt.Errorf("fan out team rosters: %w", err)
		}
		return out, nil
	})
}

func (s *RosterService) buildRoster(ctx context.Context, item team.Team, roles map[int64]role.Role, passID string) TeamRoster {
	out := TeamRoster{Team: item, Entries: []enrichment.RosterEntry{}}

	rows, err := s.teamPlayerRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		out.Error = "roster unavailable"
		if cancelled(ctx) {
			return out
		}
		s.opts.Passes.recorder().IncDegradedFetch(ScopeTeamRoster)
		s.opts.Logger.WarnContext(ctx, "team roster fetch failed",
			"team_id", item.ID,
			"pass_id", passID,
			"error", err,
		)
		return out
	}

	players := s.resolvePlayers(ctx, item.ID, rows, passID)
	out.Entries = enrichment.EnrichRoster(rows, players, roles)
	out.Available = true
	return out
}

// resolvePlayers fetches each referenced player once. Players that fail to
// load or do not exist are left out of the map and render as unresolved.
func (s *RosterService) resolvePlayers(ctx context.Context, teamID string, rows []teamplayer.TeamPlayer, passID string) map[int64]player.Player {
	ids := uniquePlayerIDs(rows)
	out := make(map[int64]player.Player, len(ids))

	var mu sync.Mutex
	err := fanOut(ctx, s.opts.Workers, ids, func(ctx context.Context, _ int, playerID int64) {
		item, found, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			if cancelled(ctx) {
				return
			}
			s.opts.Passes.recorder().IncDegradedFetch(ScopeRosterPlayer)
			s.opts.Logger.WarnContext(ctx, "roster player fetch failed",
				"team_id", teamID,
				"player_id", playerID,
				"pass_id", passID,
				"error", err,
			)
			return
		}
		if !found {
			s.opts.Logger.DebugContext(ctx, "roster references missing player",
				"team_id", teamID,
				"player_id", playerID,
				"pass_id", passID,
			)
			return
		}
		mu.Lock()
		out[playerID] = item
		mu.Unlock()
	})
	if err != nil && !cancelled(ctx) {
		s.opts.Logger.WarnContext(ctx, "roster player fan out failed",
			"team_id", teamID,
			"pass_id", passID,
			"error", err,
		)
	}
	return out
}

func (s *RosterService) roleCatalogue(ctx context.Context, passID string) map[int64]role.Role {
	items, err := s.roleRepo.List(ctx)
	if err != nil {
		if cancelled(ctx) {
			return map[int64]role.Role{}
		}
		s.opts.Passes.recorder().IncDegradedFetch(ScopeRoles)
		s.opts.Logger.WarnContext(ctx, "role catalogue fetch failed, role names left empty",
			"pass_id", passID,
			"error", err,
		)
		return map[int64]role.Role{}
	}
	return enrichment.RolesByID(items)
}

func uniquePlayerIDs(rows []teamplayer.TeamPlayer) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.PlayerID]; ok {
			continue
		}
		seen[row.PlayerID] = struct{}{}
		out = append(out, row.PlayerID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
