package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/enrichment"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
)

type MatchListService struct {
	matchRepo        match.Repository
	teamRepo         team.Repository
	championshipRepo championship.Repository
	opts             ComputeOptions
}

func NewMatchListService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	championshipRepo championship.Repository,
	opts ComputeOptions,
) *MatchListService {
	return &MatchListService{
		matchRepo:        matchRepo,
		teamRepo:         teamRepo,
		championshipRepo: championshipRepo,
		opts:             opts.normalize(),
	}
}

// List returns the organization's matches with team and championship names
// resolved. All three collections are required.
func (s *MatchListService) List(ctx context.Context, orgID int64) ([]enrichment.MatchRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchListService.List", attrOrganizationID.Int64(orgID))
	defer span.End()

	if orgID <= 0 {
		return nil, fmt.Errorf("%w: organization id must be positive", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewMatchList, strconv.FormatInt(orgID, 10), func(ctx context.Context, _ string) ([]enrichment.MatchRow, error) {
		var (
			matches       []match.Match
			teams         []team.Team
			championships []championship.Championship
		)
		err := forkJoin(ctx,
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
				teams, err = s.teamRepo.ListByOrganization(ctx, orgID)
				if err != nil {
					return fmt.Errorf("list teams: %w", err)
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
		)
		if err != nil {
			return nil, fmt.Errorf("%w: match list batch: %w", ErrDependencyUnavailable, err)
		}

		return enrichment.EnrichMatches(
			matches,
			enrichment.TeamsByID(teams),
			enrichment.ChampionshipsByID(championships),
		), nil
	})
}
