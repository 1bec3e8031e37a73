package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
)

type RoleRepository struct {
	mu    sync.RWMutex
	items []role.Role
}

func NewRoleRepository(items []role.Role) *RoleRepository {
	return &RoleRepository{items: append([]role.Role(nil), items...)}
}

func (r *RoleRepository) List(_ context.Context) ([]role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]role.Role, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

type PrizeRepository struct {
	mu     sync.RWMutex
	prizes []prize.PlayerPrize
	types  []prize.Type
}

func NewPrizeRepository(prizes []prize.PlayerPrize, types []prize.Type) *PrizeRepository {
	return &PrizeRepository{
		prizes: append([]prize.PlayerPrize(nil), prizes...),
		types:  append([]prize.Type(nil), types...),
	}
}

func (r *PrizeRepository) ListPrizes(_ context.Context) ([]prize.PlayerPrize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prize.PlayerPrize, 0, len(r.prizes))
	out = append(out, r.prizes...)
	return out, nil
}

func (r *PrizeRepository) ListTypes(_ context.Context) ([]prize.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prize.Type, 0, len(r.types))
	out = append(out, r.types...)
	return out, nil
}
