package enrichment

import (
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
)

type PrizeRow struct {
	Prize         prize.PlayerPrize
	PlayerName    string
	PrizeTypeName string
}

// EnrichPrizes keeps only prizes awarded to players present in players, which
// callers build from a single organization's roster.
func EnrichPrizes(
	prizes []prize.PlayerPrize,
	players map[int64]player.Player,
	types map[int64]prize.Type,
) []PrizeRow {
	out := make([]PrizeRow, 0, len(prizes))
	for _, item := range prizes {
		p, ok := players[item.PlayerID]
		if !ok {
			continue
		}

		row := PrizeRow{
			Prize:         item,
			PlayerName:    p.Name,
			PrizeTypeName: UnknownPrizeType,
		}
		if p.Name == "" {
			row.PlayerName = UnknownPlayer
		}
		if t, ok := types[item.PrizeTypeID]; ok && t.Name != "" {
			row.PrizeTypeName = t.Name
		}
		out = append(out, row)
	}
	return out
}
