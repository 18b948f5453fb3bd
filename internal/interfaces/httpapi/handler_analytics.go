package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

type runQuestionRequest struct {
	SQL string `json:"sql" validate:"omitempty,max=20000"`
}

type runSQLRequest struct {
	SQL string `json:"sql" validate:"required,max=20000"`
}

func (h *Handler) ListAnalyticsQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnalyticsQuestions")
	defer span.End()

	questions, err := h.analyticsService.ListQuestions(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list analytics questions failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, questions)
}

func (h *Handler) GetAnalyticsQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnalyticsQuestion")
	defer span.End()

	key := r.PathValue("key")
	question, err := h.analyticsService.GetQuestion(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "get analytics question failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, question)
}

func (h *Handler) RunAnalyticsQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsQuestion")
	defer span.End()

	key := r.PathValue("key")

	// Body is optional; when present it may carry a SQL override.
	var req runQuestionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analyticsService.RunQuestion(ctx, key, req.SQL)
	if err != nil {
		h.logger.WarnContext(ctx, "run analytics question failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ExportAnalyticsQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportAnalyticsQuestion")
	defer span.End()

	key := r.PathValue("key")
	result, err := h.analyticsService.RunQuestion(ctx, key, "")
	if err != nil {
		h.logger.WarnContext(ctx, "export analytics question failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	csvBody, err := h.analyticsService.ExportCSV(ctx, result)
	if err != nil {
		h.logger.WarnContext(ctx, "export analytics csv failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key+".csv"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(csvBody); err != nil {
		h.logger.WarnContext(ctx, "write csv response failed", "key", key, "error", err)
	}
}

func (h *Handler) RunAnalyticsSQL(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsSQL")
	defer span.End()

	var req runSQLRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analyticsService.RunSQL(ctx, req.SQL)
	if err != nil {
		h.logger.WarnContext(ctx, "run ad-hoc analytics query failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
