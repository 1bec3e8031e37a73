package httpapi

import (
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/enrichment"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	"github.com/riskibarqy/skauts-stats/internal/domain/ranking"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
)

type organizationDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath,omitempty"`
}

type playerRankingDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	ImagePath  string `json:"imagePath,omitempty"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
}

type dashboardDTO struct {
	Organization      organizationDTO    `json:"organization"`
	PlayerCount       int                `json:"playerCount"`
	MatchCount        int                `json:"matchCount"`
	ChampionshipCount int                `json:"championshipCount"`
	TeamCount         int                `json:"teamCount"`
	TotalGoals        int                `json:"totalGoals"`
	TopScorers        []playerRankingDTO `json:"topScorers"`
	TopAssisters      []playerRankingDTO `json:"topAssisters"`
	RankingsAvailable bool               `json:"rankingsAvailable"`
	DegradedPlayerIDs []int64            `json:"degradedPlayerIds,omitempty"`
}

type matchDTO struct {
	ID               int64  `json:"id"`
	TeamAID          string `json:"teamAId"`
	TeamAName        string `json:"teamAName"`
	TeamBID          string `json:"teamBId"`
	TeamBName        string `json:"teamBName"`
	Date             string `json:"date"`
	ChampionshipID   *int64 `json:"championshipId"`
	ChampionshipName string `json:"championshipName,omitempty"`
	Friendly         bool   `json:"friendly"`
}

type eventDTO struct {
	ID            int64  `json:"id"`
	MatchID       int64  `json:"matchId"`
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	PlayerImage   string `json:"playerImage,omitempty"`
	EventTypeID   int64  `json:"eventTypeId"`
	EventTypeName string `json:"eventTypeName"`
	Category      string `json:"category"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	EventTime     string `json:"eventTime"`
}

type goalTallyDTO struct {
	TeamA        int  `json:"teamA"`
	TeamB        int  `json:"teamB"`
	Unattributed int  `json:"unattributed"`
	Total        int  `json:"total"`
	Available    bool `json:"available"`
}

type matchDetailDTO struct {
	Match  matchDTO     `json:"match"`
	Events []eventDTO   `json:"events"`
	Tally  goalTallyDTO `json:"tally"`
}

type rosterEntryDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	RoleID     int64  `json:"roleId,omitempty"`
	RoleName   string `json:"roleName,omitempty"`
	ImagePath  string `json:"imagePath,omitempty"`
	JoinDate   string `json:"joinDate,omitempty"`
	Resolved   bool   `json:"resolved"`
}

type teamRosterDTO struct {
	TeamID    string           `json:"teamId"`
	TeamName  string           `json:"teamName"`
	Available bool             `json:"available"`
	Error     string           `json:"error,omitempty"`
	Players   []rosterEntryDTO `json:"players"`
}

type prizeDTO struct {
	ID            int64  `json:"id"`
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	PrizeTypeID   int64  `json:"prizeTypeId"`
	PrizeTypeName string `json:"prizeTypeName"`
	ReceiveDate   string `json:"receiveDate"`
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func toOrganizationDTO(item organization.Organization) organizationDTO {
	return organizationDTO{
		ID:        item.ID,
		Name:      item.Name,
		ImagePath: item.ImagePath,
	}
}

func toPlayerRankingDTOs(rows []ranking.PlayerRanking) []playerRankingDTO {
	out := make([]playerRankingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerRankingDTO{
			PlayerID:   row.Player.ID,
			PlayerName: row.Player.Name,
			ImagePath:  row.Player.ImagePath,
			Goals:      row.Goals,
			Assists:    row.Assists,
		})
	}
	return out
}

func toDashboardDTO(item usecase.Dashboard) dashboardDTO {
	return dashboardDTO{
		Organization:      toOrganizationDTO(item.Organization),
		PlayerCount:       item.PlayerCount,
		MatchCount:        item.MatchCount,
		ChampionshipCount: item.ChampionshipCount,
		TeamCount:         item.TeamCount,
		TotalGoals:        item.TotalGoals,
		TopScorers:        toPlayerRankingDTOs(item.TopScorers),
		TopAssisters:      toPlayerRankingDTOs(item.TopAssisters),
		RankingsAvailable: item.RankingsAvailable,
		DegradedPlayerIDs: item.DegradedPlayers,
	}
}

func toMatchDTO(item match.Match, teamAName, teamBName, championshipName string) matchDTO {
	return matchDTO{
		ID:               item.ID,
		TeamAID:          item.TeamAID,
		TeamAName:        teamAName,
		TeamBID:          item.TeamBID,
		TeamBName:        teamBName,
		Date:             formatTime(item.Date),
		ChampionshipID:   item.ChampionshipID,
		ChampionshipName: championshipName,
		Friendly:         item.IsFriendly(),
	}
}

func toMatchRowDTOs(rows []enrichment.MatchRow) []matchDTO {
	out := make([]matchDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatchDTO(row.Match, row.TeamAName, row.TeamBName, row.ChampionshipName))
	}
	return out
}

func toEventDTOs(items []enrichment.EnrichedEvent) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventDTO{
			ID:            item.Event.ID,
			MatchID:       item.Event.MatchID,
			PlayerID:      item.Event.PlayerID,
			PlayerName:    item.PlayerName,
			PlayerImage:   item.PlayerImage,
			EventTypeID:   item.Event.EventTypeID,
			EventTypeName: item.EventTypeName,
			Category:      string(item.Category),
			Icon:          item.Icon,
			Color:         item.Color,
			EventTime:     formatTime(item.Event.EventTime),
		})
	}
	return out
}

func toMatchDetailDTO(item usecase.MatchDetail) matchDetailDTO {
	return matchDetailDTO{
		Match:  toMatchDTO(item.Match, item.TeamAName, item.TeamBName, ""),
		Events: toEventDTOs(item.Events),
		Tally: goalTallyDTO{
			TeamA:        item.Tally.TeamA,
			TeamB:        item.Tally.TeamB,
			Unattributed: item.Tally.Unattributed,
			Total:        item.Tally.Total(),
			Available:    item.TallyAvailable,
		},
	}
}

func toTeamRosterDTO(item usecase.TeamRoster) teamRosterDTO {
	players := make([]rosterEntryDTO, 0, len(item.Entries))
	for _, entry := range item.Entries {
		players = append(players, rosterEntryDTO{
			PlayerID:   entry.Membership.PlayerID,
			PlayerName: entry.PlayerName,
			RoleID:     entry.Player.RoleID,
			RoleName:   entry.RoleName,
			ImagePath:  entry.Player.ImagePath,
			JoinDate:   formatTime(entry.Membership.JoinDate),
			Resolved:   entry.Resolved,
		})
	}
	return teamRosterDTO{
		TeamID:    item.Team.ID,
		TeamName:  item.Team.Name,
		Available: item.Available,
		Error:     item.Error,
		Players:   players,
	}
}

func toPrizeDTOs(rows []enrichment.PrizeRow) []prizeDTO {
	out := make([]prizeDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, prizeDTO{
			ID:            row.Prize.ID,
			PlayerID:      row.Prize.PlayerID,
			PlayerName:    row.PlayerName,
			PrizeTypeID:   row.Prize.PrizeTypeID,
			PrizeTypeName: row.PrizeTypeName,
			ReceiveDate:   formatTime(row.Prize.ReceiveDate),
		})
	}
	return out
}
