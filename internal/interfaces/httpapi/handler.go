package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	dashboardService   *usecase.DashboardService
	matchDetailService *usecase.MatchDetailService
	matchListService   *usecase.MatchListService
	rosterService      *usecase.RosterService
	prizeService       *usecase.PrizeService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	matchDetailService *usecase.MatchDetailService,
	matchListService *usecase.MatchListService,
	rosterService *usecase.RosterService,
	prizeService *usecase.PrizeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService:   dashboardService,
		matchDetailService: matchDetailService,
		matchListService:   matchListService,
		rosterService:      rosterService,
		prizeService:       prizeService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type organizationPath struct {
	OrgID int64 `validate:"gt=0"`
}

type matchPath struct {
	OrgID   int64 `validate:"gt=0"`
	MatchID int64 `validate:"gt=0"`
}

type teamPath struct {
	TeamID string `validate:"required,max=64"`
}

func (h *Handler) organizationPath(ctx context.Context, r *http.Request) (organizationPath, error) {
	orgID, err := parsePathID(r, "orgID")
	if err != nil {
		return organizationPath{}, err
	}
	params := organizationPath{OrgID: orgID}
	if err := h.validateRequest(ctx, params); err != nil {
		return organizationPath{}, err
	}
	tagResource(trace.SpanFromContext(ctx), attribute.Int64("skauts.organization_id", orgID))
	return params, nil
}

func (h *Handler) matchPath(ctx context.Context, r *http.Request) (matchPath, error) {
	orgID, err := parsePathID(r, "orgID")
	if err != nil {
		return matchPath{}, err
	}
	matchID, err := parsePathID(r, "matchID")
	if err != nil {
		return matchPath{}, err
	}
	params := matchPath{OrgID: orgID, MatchID: matchID}
	if err := h.validateRequest(ctx, params); err != nil {
		return matchPath{}, err
	}
	tagResource(trace.SpanFromContext(ctx),
		attribute.Int64("skauts.organization_id", orgID),
		attribute.Int64("skauts.match_id", matchID),
	)
	return params, nil
}

func (h *Handler) teamPath(ctx context.Context, r *http.Request) (teamPath, error) {
	params := teamPath{TeamID: strings.TrimSpace(r.PathValue("teamID"))}
	if err := h.validateRequest(ctx, params); err != nil {
		return teamPath{}, err
	}
	tagResource(trace.SpanFromContext(ctx), attribute.String("skauts.team_id", params.TeamID))
	return params, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// logFailure logs batch failures at ERROR. Client mistakes and superseded
// passes are routine and stay at lower levels.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	status := mapError(ctx, err).HTTPStatus
	markFailed(trace.SpanFromContext(ctx), status, err)
	switch status {
	case http.StatusBadRequest, http.StatusNotFound:
		h.logger.WarnContext(ctx, msg, args...)
	case http.StatusConflict:
		h.logger.DebugContext(ctx, msg, args...)
	default:
		h.logger.ErrorContext(ctx, msg, args...)
	}
}
