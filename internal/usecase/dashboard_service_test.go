package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/skauts-stats/internal/domain/championship"
	"github.com/riskibarqy/skauts-stats/internal/domain/event"
	"github.com/riskibarqy/skauts-stats/internal/domain/eventtype"
	"github.com/riskibarqy/skauts-stats/internal/domain/match"
	"github.com/riskibarqy/skauts-stats/internal/domain/organization"
	"github.com/riskibarqy/skauts-stats/internal/domain/player"
	"github.com/riskibarqy/skauts-stats/internal/domain/team"
	championshipmock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/championship"
	eventmock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/event"
	eventtypemock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/eventtype"
	matchmock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/match"
	organizationmock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/organization"
	playermock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/skauts-stats/internal/mocks/domain/team"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

const testOrgID int64 = 7

var testEventTypes = []eventtype.EventType{
	{ID: 10, Name: "Gol"},
	{ID: 11, Name: "Assistência"},
	{ID: 12, Name: "Cartão Amarelo"},
}

type dashboardMocks struct {
	orgs          *organizationmock.Repository
	players       *playermock.Repository
	matches       *matchmock.Repository
	championships *championshipmock.Repository
	teams         *teammock.Repository
	eventTypes    *eventtypemock.Repository
	events        *eventmock.Repository
}

func newDashboardMocks(t *testing.T) dashboardMocks {
	return dashboardMocks{
		orgs:          organizationmock.NewRepository(t),
		players:       playermock.NewRepository(t),
		matches:       matchmock.NewRepository(t),
		championships: championshipmock.NewRepository(t),
		teams:         teammock.NewRepository(t),
		eventTypes:    eventtypemock.NewRepository(t),
		events:        eventmock.NewRepository(t),
	}
}

func (m dashboardMocks) service(metrics MetricsRecorder) *DashboardService {
	return NewDashboardService(m.orgs, m.players, m.matches, m.championships, m.teams, m.eventTypes, m.events, testOptions(metrics))
}

func (m dashboardMocks) expectBatch(players []player.Player) {
	m.orgs.On("GetByID", mock.Anything, testOrgID).
		Return(organization.Organization{ID: testOrgID, Name: "Skauts FC"}, true, nil).Once()
	m.expectCollections(players)
}

func (m dashboardMocks) expectCollections(players []player.Player) {
	m.players.On("ListByOrganization", mock.Anything, testOrgID).Return(players, nil).Once()
	m.matches.On("ListByOrganization", mock.Anything, testOrgID).
		Return([]match.Match{{ID: 1, OrgID: testOrgID}, {ID: 2, OrgID: testOrgID}}, nil).Once()
	m.championships.On("ListByOrganization", mock.Anything, testOrgID).
		Return([]championship.Championship{{ID: 1, OrgID: testOrgID}}, nil).Once()
	m.teams.On("ListByOrganization", mock.Anything, testOrgID).
		Return([]team.Team{{ID: "t-a", OrgID: testOrgID}, {ID: "t-b", OrgID: testOrgID}}, nil).Once()
}

func playerEvents(playerID int64, typeIDs ...int64) []event.Event {
	out := make([]event.Event, 0, len(typeIDs))
	for i, typeID := range typeIDs {
		out = append(out, event.Event{ID: playerID*100 + int64(i), PlayerID: playerID, EventTypeID: typeID})
	}
	return out
}

var dashboardPlayers = []player.Player{
	{ID: 1, Name: "Ana", OrgID: testOrgID},
	{ID: 2, Name: "Bia", OrgID: testOrgID},
	{ID: 3, Name: "Cris", OrgID: testOrgID},
	{ID: 9, Name: "Outsider", OrgID: 8},
}

func TestDashboardService_Get_Success(t *testing.T) {
	t.Parallel()

	mocks := newDashboardMocks(t)
	mocks.expectBatch(dashboardPlayers)
	mocks.eventTypes.On("List", mock.Anything).Return(testEventTypes, nil).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(1)).Return(playerEvents(1, 10, 10, 12), nil).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(2)).Return(playerEvents(2, 10, 11, 10), nil).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(3)).Return(playerEvents(3, 10, 11, 11), nil).Once()

	got, err := mocks.service(newFakeMetrics()).Get(context.Background(), testOrgID)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}

	if got.Organization.Name != "Skauts FC" {
		t.Fatalf("unexpected organization: %+v", got.Organization)
	}
	if got.PlayerCount != 3 || got.MatchCount != 2 || got.ChampionshipCount != 1 || got.TeamCount != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.TotalGoals != 5 {
		t.Fatalf("unexpected total goals: %d", got.TotalGoals)
	}
	if !got.RankingsAvailable {
		t.Fatalf("expected rankings available")
	}

	wantScorers := []int64{1, 2, 3}
	for i, id := range wantScorers {
		if got.TopScorers[i].Player.ID != id {
			t.Fatalf("scorer %d: got=%d want=%d", i, got.TopScorers[i].Player.ID, id)
		}
	}
	if got.TopAssisters[0].Player.ID != 3 || got.TopAssisters[0].Assists != 2 {
		t.Fatalf("unexpected top assister: %+v", got.TopAssisters[0])
	}
	if len(got.DegradedPlayers) != 0 {
		t.Fatalf("expected no degraded players, got %v", got.DegradedPlayers)
	}
}

func TestDashboardService_Get_EventTypeFailureEmptiesRankings(t *testing.T) {
	t.Parallel()

	metrics := newFakeMetrics()
	mocks := newDashboardMocks(t)
	mocks.expectBatch(dashboardPlayers)
	mocks.eventTypes.On("List", mock.Anything).Return(nil, errors.New("catalogue down")).Once()

	got, err := mocks.service(metrics).Get(context.Background(), testOrgID)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if got.RankingsAvailable {
		t.Fatalf("expected rankings unavailable")
	}
	if len(got.TopScorers) != 0 || len(got.TopAssisters) != 0 || got.TotalGoals != 0 {
		t.Fatalf("expected empty rankings, got %+v", got)
	}
	if got.PlayerCount != 3 {
		t.Fatalf("expected counts still reported, got %d players", got.PlayerCount)
	}
	if metrics.degradedCount(ScopeEventTypes) != 1 {
		t.Fatalf("expected degraded event type fetch recorded")
	}
}

func TestDashboardService_Get_PlayerEventFailureCountsZero(t *testing.T) {
	t.Parallel()

	metrics := newFakeMetrics()
	mocks := newDashboardMocks(t)
	mocks.expectBatch(dashboardPlayers[:3])
	mocks.eventTypes.On("List", mock.Anything).Return(testEventTypes, nil).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(1)).Return(playerEvents(1, 10), nil).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(2)).Return(nil, errors.New("timeout")).Once()
	mocks.events.On("ListByPlayer", mock.Anything, int64(3)).Return(playerEvents(3, 10, 10), nil).Once()

	got, err := mocks.service(metrics).Get(context.Background(), testOrgID)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if got.TotalGoals != 3 {
		t.Fatalf("unexpected total goals: %d", got.TotalGoals)
	}
	if len(got.DegradedPlayers) != 1 || got.DegradedPlayers[0] != 2 {
		t.Fatalf("unexpected degraded players: %v", got.DegradedPlayers)
	}
	if got.TopScorers[2].Player.ID != 2 || got.TopScorers[2].Goals != 0 {
		t.Fatalf("expected failed player ranked with zero goals, got %+v", got.TopScorers[2])
	}
	if metrics.degradedCount(ScopePlayerEvents) != 1 {
		t.Fatalf("expected degraded player events recorded")
	}
}

func TestDashboardService_FetchPlayerEvents_SupersededPassIsNotDegraded(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 50)
	for i := range players {
		players[i] = player.Player{ID: int64(i + 1), OrgID: testOrgID}
	}

	t.Run("cancelled before fan out", func(t *testing.T) {
		t.Parallel()

		metrics := newFakeMetrics()
		mocks := newDashboardMocks(t)
		ctx, cancel := context.WithCancelCause(context.Background())
		cancel(resilience.ErrPassSuperseded)

		_, degraded, err := mocks.service(metrics).fetchPlayerEvents(ctx, testOrgID, "pass-1", players)
		if !errors.Is(err, resilience.ErrPassSuperseded) {
			t.Fatalf("expected superseded cause, got %v", err)
		}
		if len(degraded) != 0 || metrics.degradedCount(ScopePlayerEvents) != 0 {
			t.Fatalf("expected no degraded players, got %v (metric %d)", degraded, metrics.degradedCount(ScopePlayerEvents))
		}
		mocks.events.AssertNotCalled(t, "ListByPlayer", mock.Anything, mock.Anything)
	})

	t.Run("cancelled during fan out", func(t *testing.T) {
		t.Parallel()

		metrics := newFakeMetrics()
		mocks := newDashboardMocks(t)
		ctx, cancel := context.WithCancelCause(context.Background())
		defer cancel(nil)

		mocks.events.On("ListByPlayer", mock.Anything, int64(1)).
			Run(func(mock.Arguments) { cancel(resilience.ErrPassSuperseded) }).
			Return(nil, context.Canceled).Once()
		mocks.events.On("ListByPlayer", mock.Anything, mock.Anything).
			Return(nil, context.Canceled).Maybe()

		opts := testOptions(metrics)
		opts.Workers = 1
		svc := NewDashboardService(mocks.orgs, mocks.players, mocks.matches, mocks.championships, mocks.teams, mocks.eventTypes, mocks.events, opts)

		_, _, err := svc.fetchPlayerEvents(ctx, testOrgID, "pass-1", players)
		if !errors.Is(err, resilience.ErrPassSuperseded) {
			t.Fatalf("expected superseded cause, got %v", err)
		}
		if got := metrics.degradedCount(ScopePlayerEvents); got != 0 {
			t.Fatalf("expected cancelled fetches to stay out of the degraded metric, got %d", got)
		}
	})
}

func TestDashboardService_Get_ZeroPlayers(t *testing.T) {
	t.Parallel()

	mocks := newDashboardMocks(t)
	mocks.expectBatch([]player.Player{})
	mocks.eventTypes.On("List", mock.Anything).Return(testEventTypes, nil).Once()

	got, err := mocks.service(nil).Get(context.Background(), testOrgID)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if len(got.TopScorers) != 0 || len(got.TopAssisters) != 0 || got.TotalGoals != 0 {
		t.Fatalf("expected empty rankings, got %+v", got)
	}
}

func TestDashboardService_Get_BatchFailure(t *testing.T) {
	t.Parallel()

	mocks := newDashboardMocks(t)
	mocks.orgs.On("GetByID", mock.Anything, testOrgID).
		Return(organization.Organization{ID: testOrgID}, true, nil).Maybe()
	mocks.players.On("ListByOrganization", mock.Anything, testOrgID).Return(dashboardPlayers, nil).Maybe()
	mocks.matches.On("ListByOrganization", mock.Anything, testOrgID).Return([]match.Match{}, nil).Maybe()
	mocks.championships.On("ListByOrganization", mock.Anything, testOrgID).Return([]championship.Championship{}, nil).Maybe()
	mocks.eventTypes.On("List", mock.Anything).Return(testEventTypes, nil).Maybe()
	mocks.teams.On("ListByOrganization", mock.Anything, testOrgID).Return(nil, errors.New("503")).Once()

	_, err := mocks.service(nil).Get(context.Background(), testOrgID)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestDashboardService_Get_OrganizationNotFound(t *testing.T) {
	t.Parallel()

	mocks := newDashboardMocks(t)
	mocks.expectCollections(dashboardPlayers)
	mocks.orgs.On("GetByID", mock.Anything, testOrgID).Return(organization.Organization{}, false, nil).Once()
	mocks.eventTypes.On("List", mock.Anything).Return(testEventTypes, nil).Once()

	_, err := mocks.service(nil).Get(context.Background(), testOrgID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDashboardService_Get_InvalidOrganization(t *testing.T) {
	t.Parallel()

	mocks := newDashboardMocks(t)
	_, err := mocks.service(nil).Get(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
