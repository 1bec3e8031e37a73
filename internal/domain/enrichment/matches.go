package enrichment

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
)

type MatchRow struct {
	Match            match.Match
	TeamAName        string
	TeamBName        string
	ChampionshipName string
}

func EnrichMatches(
	matches []match.Match,
	teams map[string]team.Team,
	championships map[int64]championship.Championship,
) []MatchRow {
	out := make([]MatchRow, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchRow{
			Match:            m,
			TeamAName:        TeamName(m.TeamAID, teams),
			TeamBName:        TeamName(m.TeamBID, teams),
			ChampionshipName: ChampionshipName(m, championships),
		})
	}
	return out
}

// TeamName resolves a team reference: NoTeam for an empty id, UnknownTeam for a
// dangling one.
func TeamName(teamID string, teams map[string]team.Team) string {
	if teamID == "" {
		return NoTeam
	}
	t, ok := teams[teamID]
	if !ok || t.Name == "" {
		return UnknownTeam
	}
	return t.Name
}

func ChampionshipName(m match.Match, championships map[int64]championship.Championship) string {
	if m.IsFriendly() {
		return FriendlyChampionship
	}
	c, ok := championships[*m.ChampionshipID]
	if !ok || c.Name == "" {
		return UnknownChampionship
	}
	return c.Name
}
