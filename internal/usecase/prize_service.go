package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/skauts-stats/internal/domain/enrichment"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
)

type PrizeService struct {
	playerRepo player.Repository
	prizeRepo  prize.Repository
	opts       ComputeOptions
}

func NewPrizeService(playerRepo player.Repository, prizeRepo prize.Repository, opts ComputeOptions) *PrizeService {
	return &PrizeService{
		playerRepo: playerRepo,
		prizeRepo:  prizeRepo,
		opts:       opts.normalize(),
	}
}

// List returns the prizes awarded to the organization's players.
func (s *PrizeService) List(ctx context.Context, orgID int64) ([]enrichment.PrizeRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PrizeService.List", attrOrganizationID.Int64(orgID))
	defer span.End()

	if orgID <= 0 {
		return nil, fmt.Errorf("%w: organization id must be positive", ErrInvalidInput)
	}

	return runPass(ctx, s.opts.Passes, ViewPrizes, strconv.FormatInt(orgID, 10), func(ctx context.Context, _ string) ([]enrichment.PrizeRow, error) {
		var (
			players []player.Player
			types   []prize.Type
			prizes  []prize.PlayerPrize
		)
		err := forkJoin(ctx,
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
				types, err = s.prizeRepo.ListTypes(ctx)
				if err != nil {
					return fmt.Errorf("list prize types: %w", err)
				}
				return nil
			},
			func(ctx context.Context) error {
				var err error
				prizes, err = s.prizeRepo.ListPrizes(ctx)
				if err != nil {
					return fmt.Errorf("list player prizes: %w", err)
				}
				return nil
			},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: prize batch: %w", ErrDependencyUnavailable, err)
		}

		return enrichment.EnrichPrizes(
			prizes,
			enrichment.PlayersByID(filterOrganizationPlayers(players, orgID)),
			enrichment.PrizeTypesByID(types),
		), nil
	})
}
