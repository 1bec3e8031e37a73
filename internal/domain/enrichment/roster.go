package enrichment

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

// RosterEntry is a membership row with the referenced player resolved.
// Resolved is false when the player could not be loaded; Player then only
// carries the id from the membership row.
type RosterEntry struct {
	Membership teamplayer.TeamPlayer
	Player     player.Player
	PlayerName string
	RoleName   string
	Resolved   bool
}

func EnrichRoster(
	rows []teamplayer.TeamPlayer,
	players map[int64]player.Player,
	roles map[int64]role.Role,
) []RosterEntry {
	out := make([]RosterEntry, 0, len(rows))
	for _, row := range rows {
		entry := RosterEntry{
			Membership: row,
			Player:     player.Player{ID: row.PlayerID},
			PlayerName: UnknownPlayer,
		}
		if p, ok := players[row.PlayerID]; ok {
			entry.Player = p
			entry.PlayerName = p.Name
			entry.Resolved = true
			if r, ok := roles[p.RoleID]; ok {
				entry.RoleName = r.Name
			}
		}
		out = append(out, entry)
	}
	return out
}
