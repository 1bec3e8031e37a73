package httpapi

import "net/http"

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	params, err := h.teamPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roster, err := h.rosterService.TeamRoster(ctx, params.TeamID)
	if err != nil {
		h.logFailure(ctx, "get team roster failed", err, "team_id", params.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamRosterDTO(roster))
}

func (h *Handler) ListOrganizationRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOrganizationRosters")
	defer span.End()

	params, err := h.organizationPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rosters, err := h.rosterService.OrganizationRosters(ctx, params.OrgID)
	if err != nil {
		h.logFailure(ctx, "list organization rosters failed", err, "organization_id", params.OrgID)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamRosterDTO, 0, len(rosters))
	for _, item := range rosters {
		out = append(out, toTeamRosterDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
