package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

type TeamRepository struct {
	mu         sync.RWMutex
	teamsByOrg map[int64][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByOrg := make(map[int64][]team.Team)
	for _, item := range teams {
		teamsByOrg[item.OrgID] = append(teamsByOrg[item.OrgID], item)
	}

	return &TeamRepository{teamsByOrg: teamsByOrg}
}

func (r *TeamRepository) ListByOrganization(_ context.Context, orgID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByOrg[orgID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

// GetByID scans every organization; team ids are unique across the console.
func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, teams := range r.teamsByOrg {
		for _, item := range teams {
			if item.ID == teamID {
				return item, true, nil
			}
		}
	}

	return team.Team{}, false, nil
}

type TeamPlayerRepository struct {
	mu         sync.RWMutex
	rowsByTeam map[string][]teamplayer.TeamPlayer
}

func NewTeamPlayerRepository(rows []teamplayer.TeamPlayer) *TeamPlayerRepository {
	rowsByTeam := make(map[string][]teamplayer.TeamPlayer)
	for _, row := range rows {
		rowsByTeam[row.TeamID] = append(rowsByTeam[row.TeamID], row)
	}

	return &TeamPlayerRepository{rowsByTeam: rowsByTeam}
}

func (r *TeamPlayerRepository) ListByTeam(_ context.Context, teamID string) ([]teamplayer.TeamPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rowsByTeam[teamID]
	out := make([]teamplayer.TeamPlayer, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}
