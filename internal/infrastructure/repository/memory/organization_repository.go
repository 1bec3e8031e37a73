package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
)

type OrganizationRepository struct {
	mu    sync.RWMutex
	index map[int64]organization.Organization
}

func NewOrganizationRepository(items []organization.Organization) *OrganizationRepository {
	index := make(map[int64]organization.Organization, len(items))
	for _, item := range items {
		index[item.ID] = item
	}

	return &OrganizationRepository{index: index}
}

func (r *OrganizationRepository) GetByID(_ context.Context, id int64) (organization.Organization, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[id]
	return item, ok, nil
}
