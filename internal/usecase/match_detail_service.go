package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/riskibarqy/skauts-stats/internal/domain/enrichment"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/ranking"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

// MatchDetail is the enriched view of a single match.
type MatchDetail struct {
	Match     match.Match
	TeamAName string
	TeamBName string
	Events    []enrichment.EnrichedEvent
	Tally     ranking.GoalTally
	// TallyAvailable is false when goals could not be identified because the
	// event type catalogue failed to load.
	TallyAvailable bool
}

type MatchDetailService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	teamPlayerRepo teamplayer.Repository
	playerRepo     player.Repository
	eventTypeRepo  eventtype.Repository
	eventRepo      event.Repository
	opts           ComputeOptions
}

func NewMatchDetailService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	teamPlayerRepo teamplayer.Repository,
	playerRepo player.Repository,
	eventTypeRepo eventtype.Repository,
	eventRepo event.Repository,
	opts ComputeOptions,
) *MatchDetailService {
	return &MatchDetailService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		teamPlayerRepo: teamPlayerRepo,
		playerRepo:     playerRepo,
		eventTypeRepo:  eventTypeRepo,
		eventRepo:      eventRepo,
		opts:           opts.normalize(),
	}
}

func (s *MatchDetailService) Get(ctx context.Context, orgID, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchDetailService.Get",
		attrOrganizationID.Int64(orgID),
		attrMatchID.Int64(matchID),
	)
	defer span.End()

	if orgID <= 0 {
		return MatchDetail{}, fmt.Errorf("%w: organization id must be positive", ErrInvalidInput)
	}
	if matchID <= 0 {
		return MatchDetail{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewMatchDetail, strconv.FormatInt(matchID, 10), func(ctx context.Context, passID string) (MatchDetail, error) {
		return s.compute(ctx, orgID, matchID, passID)
	})
}

func (s *MatchDetailService) compute(ctx context.Context, orgID, matchID int64, passID string) (MatchDetail, error) {
	item, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("%w: get match id=%d: %w", ErrDependencyUnavailable, matchID, err)
	}
	if !found || item.OrgID != orgID {
		return MatchDetail{}, fmt.Errorf("%w: match id=%d", ErrNotFound, matchID)
	}

	var (
		events   []event.Event
		teamA    string
		teamB    string
		rosterA  map[int64]struct{}
		rosterB  map[int64]struct{}
		players  map[int64]player.Player
		types    []eventtype.EventType
		typesErr error
	)

	err = forkJoin(ctx,
		func(ctx context.Context) error {
			var err error
			events, err = s.eventRepo.ListByMatch(ctx, matchID)
			if err != nil {
				return fmt.Errorf("list match events: %w", err)
			}
			return nil
		},
		func(ctx context.Context) error {
			teamA = s.teamName(ctx, item.TeamAID, passID)
			return nil
		},
		func(ctx context.Context) error {
			teamB = s.teamName(ctx, item.TeamBID, passID)
			return nil
		},
		func(ctx context.Context) error {
			rosterA = s.rosterMembers(ctx, item.TeamAID, passID)
			return nil
		},
		func(ctx context.Context) error {
			rosterB = s.rosterMembers(ctx, item.TeamBID, passID)
			return nil
		},
		func(ctx context.Context) error {
			items, err := s.playerRepo.ListByOrganization(ctx, orgID)
			if err != nil {
				s.degraded(ctx, ScopePlayers, passID, "organization players fetch failed", err, "organization_id", orgID)
				players = map[int64]player.Player{}
				return nil
			}
			players = enrichment.PlayersByID(filterOrganizationPlayers(items, orgID))
			return nil
		},
		func(ctx context.Context) error {
			types, typesErr = s.eventTypeRepo.List(ctx)
			if typesErr != nil {
				s.degraded(ctx, ScopeEventTypes, passID, "event type catalogue fetch failed", typesErr, "match_id", matchID)
			}
			return nil
		},
	)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("%w: match detail batch: %w", ErrDependencyUnavailable, err)
	}

	sorted := append([]event.Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventTime.Before(sorted[j].EventTime)
	})

	out := MatchDetail{
		Match:          item,
		TeamAName:      teamA,
		TeamBName:      teamB,
		Events:         enrichment.EnrichEvents(sorted, players, enrichment.EventTypesByID(types), s.opts.Classifier),
		TallyAvailable: typesErr == nil,
	}
	if typesErr == nil {
		canonical := ranking.ResolveCanonicalTypes(types, s.opts.Classifier)
		out.Tally = ranking.TallyGoals(sorted, canonical, rosterA, rosterB)
	}

	return out, nil
}

func (s *MatchDetailService) teamName(ctx context.Context, teamID, passID string) string {
	if teamID == "" {
		return enrichment.NoTeam
	}
	item, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		s.degraded(ctx, ScopeTeam, passID, "team lookup failed", err, "team_id", teamID)
		return enrichment.UnknownTeam
	}
	if !found || item.Name == "" {
		return enrichment.UnknownTeam
	}
	return item.Name
}

func (s *MatchDetailService) rosterMembers(ctx context.Context, teamID, passID string) map[int64]struct{} {
	out := map[int64]struct{}{}
	if teamID == "" {
		return out
	}
	rows, err := s.teamPlayerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		s.degraded(ctx, ScopeTeamRoster, passID, "team roster fetch failed, goals left unattributed", err, "team_id", teamID)
		return out
	}
	for _, row := range rows {
		out[row.PlayerID] = struct{}{}
	}
	return out
}

func (s *MatchDetailService) degraded(ctx context.Context, scope, passID, msg string, err error, args ...any) {
	if cancelled(ctx) {
		return
	}
	s.opts.Passes.recorder().IncDegradedFetch(scope)
	fields := append([]any{"pass_id", passID, "error", err}, args...)
	s.opts.Logger.WarnContext(ctx, msg, fields...)
}
