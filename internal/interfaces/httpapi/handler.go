package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

type Handler struct {
	liveService      *usecase.LiveScoreService
	matchService     *usecase.MatchService
	playerService    *usecase.PlayerService
	analyticsService *usecase.AnalyticsService
	dashboardService *usecase.DashboardService
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	liveService *usecase.LiveScoreService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	analyticsService *usecase.AnalyticsService,
	dashboardService *usecase.DashboardService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		liveService:      liveService,
		matchService:     matchService,
		playerService:    playerService,
		analyticsService: analyticsService,
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboardSummary")
	defer span.End()

	summary, err := h.dashboardService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dashboard summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
