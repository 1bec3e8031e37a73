package usecase

import "time"

const (
	ViewDashboard     = "dashboard"
	ViewMatchDetail   = "match_detail"
	ViewMatchList     = "match_list"
	ViewTeamRoster    = "team_roster"
	ViewOrgRosters    = "organization_rosters"
	ViewPrizes        = "prizes"
	OutcomeOK         = "ok"
	OutcomeFailed     = "failed"
	OutcomeStale      = "stale"
	ScopeEventTypes   = "event_types"
	ScopePlayerEvents = "player_events"
	ScopePlayers      = "players"
	ScopeTeam         = "team"
	ScopeTeamRoster   = "team_roster"
	ScopeRosterPlayer = "roster_player"
	ScopeRoles        = "roles"
)

// MetricsRecorder receives computation telemetry from the services.
type MetricsRecorder interface {
	ObserveComputation(view, outcome string, elapsed time.Duration)
	IncDegradedFetch(scope string)
	IncStalePass(view string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveComputation(string, string, time.Duration) {}
func (nopMetrics) IncDegradedFetch(string) {}
func (nopMetrics) IncStalePass(string) {}
