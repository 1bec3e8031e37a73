// Package enrichment resolves foreign keys of fetched records into
// display-ready rows. Every function builds fresh maps and slices and never
// mutates its inputs; dangling keys resolve to sentinel names instead of errors.
package enrichment

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
)

const (
	UnknownPlayer        = "Unknown Player"
	UnknownEvent         = "Unknown Event"
	UnknownTeam          = "Unknown"
	NoTeam               = "N/A"
	UnknownChampionship  = "Unknown"
	FriendlyChampionship = "Friendly"
	UnknownPrizeType     = "Unknown Prize Type"
)

// Index builds a lookup map keyed by key(item). Duplicate keys keep the last item.
func Index[K comparable, V any](items []V, key func(V) K) map[K]V {
	out := make(map[K]V, len(items))
	for _, item := range items {
		out[key(item)] = item
	}
	return out
}

func PlayersByID(items []player.Player) map[int64]player.Player {
	return Index(items, func(p player.Player) int64 { return p.ID })
}

func EventTypesByID(items []eventtype.EventType) map[int64]eventtype.EventType {
	return Index(items, func(t eventtype.EventType) int64 { return t.ID })
}

func TeamsByID(items []team.Team) map[string]team.Team {
	return Index(items, func(t team.Team) string { return t.ID })
}

func ChampionshipsByID(items []championship.Championship) map[int64]championship.Championship {
	return Index(items, func(c championship.Championship) int64 { return c.ID })
}

func RolesByID(items []role.Role) map[int64]role.Role {
	return Index(items, func(r role.Role) int64 { return r.ID })
}

func PrizeTypesByID(items []prize.Type) map[int64]prize.Type {
	return Index(items, func(t prize.Type) int64 { return t.ID })
}
