package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/cricstats/cricket-dashboard/internal/domain/player"
	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

type playerDTO struct {
	PlayerID     int64  `json:"playerId"`
	FullName     string `json:"fullName"`
	TeamName     string `json:"teamName"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	Country      string `json:"country,omitempty"`
}

type createPlayerRequest struct {
	PlayerID     int64  `json:"playerId" validate:"required,gt=0"`
	FullName     string `json:"fullName" validate:"required,max=200"`
	TeamName     string `json:"teamName" validate:"max=200"`
	BattingStyle string `json:"battingStyle" validate:"max=100"`
	BowlingStyle string `json:"bowlingStyle" validate:"max=100"`
	Country      string `json:"country" validate:"max=100"`
}

type updatePlayerRequest struct {
	FullName     string `json:"fullName" validate:"required,max=200"`
	TeamName     string `json:"teamName" validate:"max=200"`
	BattingStyle string `json:"battingStyle" validate:"max=100"`
	BowlingStyle string `json:"bowlingStyle" validate:"max=100"`
	Country      string `json:"country" validate:"max=100"`
}

type importPlayersRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=10"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	players, err := h.playerService.ListPlayers(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	created, err := h.playerService.CreatePlayer(ctx, player.Player{
		ID:           req.PlayerID,
		FullName:     req.FullName,
		TeamName:     req.TeamName,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
		Country:      req.Country,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRequest
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

	updated, err := h.playerService.UpdatePlayer(ctx, player.Player{
		ID:           playerID,
		FullName:     req.FullName,
		TeamName:     req.TeamName,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
		Country:      req.Country,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": playerID})
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	name := r.URL.Query().Get("name")
	found, err := h.playerService.SearchPlayers(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(found))
	for _, ext := range found {
		items = append(items, playerDTO{
			PlayerID: ext.PlayerID,
			FullName: ext.FullName,
			TeamName: ext.TeamName,
			Country:  ext.Country,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPlayers")
	defer span.End()

	var req importPlayersRequest
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

	imported, err := h.playerService.ImportPlayers(ctx, req.Name, req.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "import players failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(imported))
	for _, p := range imported {
		items = append(items, playerToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func playerToDTO(_ context.Context, p player.Player) playerDTO {
	return playerDTO{
		PlayerID:     p.ID,
		FullName:     p.FullName,
		TeamName:     p.TeamName,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		Country:      p.Country,
	}
}
