package postgres

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
)

type roleTableModel struct {
	ID      int64  `db:"id"`
	Acronym string `db:"acronym"`
	Name    string `db:"name"`
}

type prizeTypeTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type playerPrizeTableModel struct {
	ID          int64     `db:"id"`
	PlayerID    int64     `db:"player_id"`
	PrizeTypeID int64     `db:"prize_type_id"`
	ReceiveDate time.Time `db:"receive_date"`
}

func (m playerPrizeTableModel) toDomain() prize.PlayerPrize {
	return prize.PlayerPrize{
		ID:          m.ID,
		PlayerID:    m.PlayerID,
		PrizeTypeID: m.PrizeTypeID,
		ReceiveDate: m.ReceiveDate.UTC(),
	}
}

func playerPrizeModelFromDomain(item prize.PlayerPrize) playerPrizeTableModel {
	return playerPrizeTableModel{
		ID:          item.ID,
		PlayerID:    item.PlayerID,
		PrizeTypeID: item.PrizeTypeID,
		ReceiveDate: item.ReceiveDate,
	}
}
