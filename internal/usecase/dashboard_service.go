package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/ranking"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
)

// Dashboard is the organization summary: entity counts plus the scorer and
// assister rankings.
type Dashboard struct {
	Organization      organization.Organization
	PlayerCount       int
	MatchCount        int
	ChampionshipCount int
	TeamCount         int
	TotalGoals        int
	TopScorers        []ranking.PlayerRanking
	TopAssisters      []ranking.PlayerRanking
	// RankingsAvailable is false when the event type catalogue could not be
	// loaded; rankings are then empty.
	RankingsAvailable bool
	// DegradedPlayers lists players whose events could not be fetched and
	// were counted as zero.
	DegradedPlayers []int64
}

type DashboardService struct {
	orgRepo          organization.Repository
	playerRepo       player.Repository
	matchRepo        match.Repository
	championshipRepo championship.Repository
	teamRepo         team.Repository
	eventTypeRepo    eventtype.Repository
	eventRepo        event.Repository
	opts             ComputeOptions
}

func NewDashboardService(
	orgRepo organization.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	championshipRepo championship.Repository,
	teamRepo team.Repository,
	eventTypeRepo eventtype.Repository,
	eventRepo event.Repository,
	opts ComputeOptions,
) *DashboardService {
	return &DashboardService{
		orgRepo:          orgRepo,
		playerRepo:       playerRepo,
		matchRepo:        matchRepo,
		championshipRepo: championshipRepo,
		teamRepo:         teamRepo,
		eventTypeRepo:    eventTypeRepo,
		eventRepo:        eventRepo,
		opts:             opts.normalize(),
	}
}

func (s *DashboardService) Get(ctx context.Context, orgID int64) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get", attrOrganizationID.Int64(orgID))
	defer span.End()

	if orgID <= 0 {
		return Dashboard{}, fmt.Errorf("%w: organization id must be positive", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewDashboard, strconv.FormatInt(orgID, 10), func(ctx context.Context, passID string) (Dashboard, error) {
		return s.compute(ctx, orgID, passID)
	})
}

func (s *DashboardService) compute(ctx context.Context, orgID int64, passID string) (Dashboard, error) {
	var (
		org           organization.Organization
		orgFound      bool
		players       []player.Player
		matches       []match.Match
		championships []championship.Championship
		teams         []team.Team
		types         []eventtype.EventType
		typesErr      error
	)

	err := forkJoin(ctx,
		func(ctx context.Context) error {
			var err error
			org, orgFound, err = s.orgRepo.GetByID(ctx, orgID)
			if err != nil {
				return fmt.Errorf("get organization: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			players, err = s.playerRepo.ListByOrganization(ctx, orgID)
			if err != nil {
				return fmt.Errorf("list players: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			matches, err = s.matchRepo.ListByOrganization(ctx, orgID)
			if err != nil {
				return fmt.Errorf("list matches: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			championships, err = s.championshipRepo.ListByOrganization(ctx, orgID)
			if err != nil {
				return fmt.Errorf("list championships: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			var err error
			teams, err = s.teamRepo.ListByOrganization(ctx, orgID)
			if err != nil {
				return fmt.Errorf("list teams: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			// The catalogue only feeds the rankings; its failure degrades them.
			types, typesErr = s.eventTypeRepo.List(ctx)
			return nil
		},
	)
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: dashboard batch: %w", ErrDependencyUnavailable, err)
	}
	if !orgFound {
		return Dashboard{}, fmt.Errorf("%w: organization id=%d", ErrNotFound, orgID)
	}

	players = filterOrganizationPlayers(players, orgID)

	out := Dashboard{
		Organization:      org,
		PlayerCount:       len(players),
		MatchCount:        len(matches),
		ChampionshipCount: len(championships),
		TeamCount:         len(teams),
		RankingsAvailable: typesErr == nil,
		DegradedPlayers:   []int64{},
	}

	if typesErr != nil && cancelled(ctx) {
		return Dashboard{}, context.Cause(ctx)
	}
	if typesErr != nil {
		s.opts.Passes.recorder().IncDegradedFetch(ScopeEventTypes)
		s.opts.Logger.WarnContext(ctx, "event type catalogue unavailable, rankings skipped",
			"organization_id", orgID,
			"pass_id", passID,
			"error", typesErr,
		)
		empty := ranking.Empty()
		out.TopScorers = empty.TopScorers
		out.TopAssisters = empty.TopAssisters
		return out, nil
	}

	events, degraded, err := s.fetchPlayerEvents(ctx, orgID, passID, players)
	if err != nil {
		return Dashboard{}, err
	}
	out.DegradedPlayers = degraded

	result := ranking.Rank(players, events, types, s.opts.Classifier, s.opts.TopN)
	out.TopScorers = result.TopScorers
	out.TopAssisters = result.TopAssisters
	out.TotalGoals = result.TotalGoals

	return out, nil
}

// fetchPlayerEvents loads every player's events. A failed fetch contributes no
// events for that player and is reported in the degraded list.
func (s *DashboardService) fetchPlayerEvents(
	ctx context.Context,
	orgID int64,
	passID string,
	players []player.Player,
) ([]event.Event, []int64, error) {
	perPlayer := make([][]event.Event, len(players))
	failed := make([]bool, len(players))

	err := fanOut(ctx, s.opts.Workers, players, func(ctx context.Context, i int, p player.Player) {
		items, err := s.eventRepo.ListByPlayer(ctx, p.ID)
		if err != nil {
			failed[i] = true
			if cancelled(ctx) {
				return
			}
			s.opts.Passes.recorder().IncDegradedFetch(ScopePlayerEvents)
			s.opts.Logger.WarnContext(ctx, "player events fetch failed, counting zero",
				"organization_id", orgID,
				"player_id", p.ID,
				"pass_id", passID,
				"error", err,
			)
			return
		}
		perPlayer[i] = items
	})
	if err != nil {
		return nil, nil, fmt.Errorf("fan out player events: %w", err)
	}

	var (
		events   []event.Event
		degraded = []int64{}
	)
	for i, items := range perPlayer {
		if failed[i] {
			degraded = append(degraded, players[i].ID)
			continue
		}
		events = append(events, items...)
	}
	return events, degraded, nil
}

func filterOrganizationPlayers(items []player.Player, orgID int64) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.BelongsTo(orgID) {
			out = append(out, item)
		}
	}
	return out
}
