package skautsapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/prize"
	"github.com/riskibarqy/skauts-stats/internal/domain/role"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/domain/teamplayer"
)

type organizationDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	CreatedAt string `json:"createdAt"`
}

type playerDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	OrgID     int64   `json:"orgId"`
	RoleID    int64   `json:"roleId"`
	Skill     *int    `json:"skill"`
	Physique  *int    `json:"physique"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	ImagePath string  `json:"imagePath"`
	BirthDate *string `json:"birthDate"`
	CreatedAt string  `json:"createdAt"`
}

type teamDTO struct {
	ID        string `json:"id"`
	OrgID     int64  `json:"orgId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type teamPlayerDTO struct {
	TeamID   string `json:"teamId"`
	PlayerID int64  `json:"playerId"`
	JoinDate string `json:"joinDate"`
}

type matchDTO struct {
	ID             int64  `json:"id"`
	OrgID          int64  `json:"orgId"`
	TeamAID        string `json:"teamAId"`
	TeamBID        string `json:"teamBId"`
	Date           string `json:"date"`
	ChampionshipID *int64 `json:"championshipId"`
}

type championshipDTO struct {
	ID        int64   `json:"id"`
	OrgID     int64   `json:"orgId"`
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type eventDTO struct {
	ID          int64  `json:"id"`
	MatchID     int64  `json:"matchId"`
	PlayerID    int64  `json:"playerId"`
	EventTypeID int64  `json:"eventTypeId"`
	EventTime   string `json:"eventTime"`
}

type eventTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type roleDTO struct {
	ID      int64  `json:"id"`
	Acronym string `json:"acronym"`
	Name    string `json:"name"`
}

type prizeTypeDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type playerPrizeDTO struct {
	ID          int64  `json:"id"`
	PlayerID    int64  `json:"playerId"`
	PrizeTypeID int64  `json:"prizeTypeId"`
	ReceiveDate string `json:"receiveDate"`
}

func (d organizationDTO) toDomain() organization.Organization {
	return organization.Organization{
		ID:        d.ID,
		Name:      strings.TrimSpace(d.Name),
		ImagePath: strings.TrimSpace(d.ImagePath),
		CreatedAt: parseAPITime(d.CreatedAt),
	}
}

func (d playerDTO) toDomain() player.Player {
	return player.Player{
		ID:        d.ID,
		Name:      strings.TrimSpace(d.Name),
		OrgID:     d.OrgID,
		RoleID:    d.RoleID,
		Skill:     d.Skill,
		Physique:  d.Physique,
		Phone:     strings.TrimSpace(d.Phone),
		Email:     strings.TrimSpace(d.Email),
		ImagePath: strings.TrimSpace(d.ImagePath),
		BirthDate: parseOptionalAPITime(d.BirthDate),
		CreatedAt: parseAPITime(d.CreatedAt),
	}
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{
		ID:        strings.TrimSpace(d.ID),
		OrgID:     d.OrgID,
		Name:      strings.TrimSpace(d.Name),
		CreatedAt: parseAPITime(d.CreatedAt),
	}
}

func (d teamPlayerDTO) toDomain() teamplayer.TeamPlayer {
	return teamplayer.TeamPlayer{
		TeamID:   strings.TrimSpace(d.TeamID),
		PlayerID: d.PlayerID,
		JoinDate: parseAPITime(d.JoinDate),
	}
}

func (d matchDTO) toDomain() match.Match {
	return match.Match{
		ID:             d.ID,
		OrgID:          d.OrgID,
		TeamAID:        strings.TrimSpace(d.TeamAID),
		TeamBID:        strings.TrimSpace(d.TeamBID),
		Date:           parseAPITime(d.Date),
		ChampionshipID: d.ChampionshipID,
	}
}

func (d championshipDTO) toDomain() championship.Championship {
	return championship.Championship{
		ID:        d.ID,
		OrgID:     d.OrgID,
		Name:      strings.TrimSpace(d.Name),
		StartDate: parseAPITime(d.StartDate),
		EndDate:   parseOptionalAPITime(d.EndDate),
	}
}

func (d eventDTO) toDomain() event.Event {
	return event.Event{
		ID:          d.ID,
		MatchID:     d.MatchID,
		PlayerID:    d.PlayerID,
		EventTypeID: d.EventTypeID,
		EventTime:   parseAPITime(d.EventTime),
	}
}

func (d eventTypeDTO) toDomain() eventtype.EventType {
	return eventtype.EventType{ID: d.ID, Name: strings.TrimSpace(d.Name)}
}

func (d roleDTO) toDomain() role.Role {
	return role.Role{ID: d.ID, Acronym: strings.TrimSpace(d.Acronym), Name: strings.TrimSpace(d.Name)}
}

func (d prizeTypeDTO) toDomain() prize.Type {
	return prize.Type{ID: d.ID, Name: strings.TrimSpace(d.Name)}
}

func (d playerPrizeDTO) toDomain() prize.PlayerPrize {
	return prize.PlayerPrize{
		ID:          d.ID,
		PlayerID:    d.PlayerID,
		PrizeTypeID: d.PrizeTypeID,
		ReceiveDate: parseAPITime(d.ReceiveDate),
	}
}

// The API serializes DateTime values with or without an offset and with a
// variable number of fractional digits. Values without an offset are UTC.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseAPITime(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func parseOptionalAPITime(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	parsed := parseAPITime(*raw)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

func mapSlice[D any, T any](items []D, convert func(D) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}
