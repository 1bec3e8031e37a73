package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/player"
)

type PlayerRepository struct {
	mu           sync.RWMutex
	playersByOrg map[int64][]player.Player
	index        map[int64]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersByOrg := make(map[int64][]player.Player)
	index := make(map[int64]player.Player, len(players))

	for _, p := range players {
		playersByOrg[p.OrgID] = append(playersByOrg[p.OrgID], p)
		index[p.ID] = p
	}

	return &PlayerRepository{
		playersByOrg: playersByOrg,
		index:        index,
	}
}

func (r *PlayerRepository) ListByOrganization(_ context.Context, orgID int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByOrg[orgID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[id]
	return p, ok, nil
}
