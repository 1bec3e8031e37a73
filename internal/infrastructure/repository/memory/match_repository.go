package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
)

type MatchRepository struct {
	mu           sync.RWMutex
	matchesByOrg map[int64][]match.Match
	index        map[int64]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	matchesByOrg := make(map[int64][]match.Match)
	index := make(map[int64]match.Match, len(matches))
	for _, item := range matches {
		matchesByOrg[item.OrgID] = append(matchesByOrg[item.OrgID], item)
		index[item.ID] = item
	}

	return &MatchRepository{matchesByOrg: matchesByOrg, index: index}
}

func (r *MatchRepository) ListByOrganization(_ context.Context, orgID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.matchesByOrg[orgID]
	out := make([]match.Match, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[id]
	return item, ok, nil
}

type ChampionshipRepository struct {
	mu    sync.RWMutex
	byOrg map[int64][]championship.Championship
}

func NewChampionshipRepository(items []championship.Championship) *ChampionshipRepository {
	byOrg := make(map[int64][]championship.Championship)
	for _, item := range items {
		byOrg[item.OrgID] = append(byOrg[item.OrgID], item)
	}

	return &ChampionshipRepository{byOrg: byOrg}
}

func (r *ChampionshipRepository) ListByOrganization(_ context.Context, orgID int64) ([]championship.Championship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byOrg[orgID]
	out := make([]championship.Championship, 0, len(items))
	out = append(out, items...)
	return out, nil
}
