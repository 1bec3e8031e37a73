package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler == nil {
		return
	}

	mux.Handle("GET /metrics", metricsHandler)
}

func registerOrganizationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/organizations/{orgID}/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/organizations/{orgID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/organizations/{orgID}/matches/{matchID}", handler.GetMatchDetail)
	mux.HandleFunc("GET /v1/organizations/{orgID}/rosters", handler.ListOrganizationRosters)
	mux.HandleFunc("GET /v1/organizations/{orgID}/prizes", handler.ListPrizes)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
}
