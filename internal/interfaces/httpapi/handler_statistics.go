package httpapi

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	params, err := h.organizationPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, params.OrgID)
	if err != nil {
		h.logFailure(ctx, "get dashboard failed", err, "organization_id", params.OrgID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toDashboardDTO(dashboard))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	params, err := h.organizationPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.matchListService.List(ctx, params.OrgID)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err, "organization_id", params.OrgID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchRowDTOs(rows))
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	params, err := h.matchPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchDetailService.Get(ctx, params.OrgID, params.MatchID)
	if err != nil {
		h.logFailure(ctx, "get match detail failed", err, "organization_id", params.OrgID, "match_id", params.MatchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchDetailDTO(detail))
}

func (h *Handler) ListPrizes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPrizes")
	defer span.End()

	params, err := h.organizationPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.prizeService.List(ctx, params.OrgID)
	if err != nil {
		h.logFailure(ctx, "list prizes failed", err, "organization_id", params.OrgID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPrizeDTOs(rows))
}
