package httpapi

import (
	"context"
	"net/http"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
)

type matchDTO struct {
	MatchID    int64  `json:"matchId"`
	SeriesID   int64  `json:"seriesId"`
	SeriesName string `json:"seriesName"`
	MatchDescr string `json:"matchDescr"`
	Format     string `json:"matchFormat"`
	Venue      string `json:"venue"`
	City       string `json:"city"`
	Status     string `json:"status"`
}

type inningsDTO struct {
	InningsNumber int     `json:"inningsNumber"`
	Runs          int     `json:"runs"`
	Wickets       int     `json:"wickets"`
	Overs         float64 `json:"overs"`
}

type teamViewDTO struct {
	TeamID   int64        `json:"teamId"`
	TeamName string       `json:"teamName"`
	Innings  []inningsDTO `json:"innings"`
}

type matchViewDTO struct {
	Match matchDTO      `json:"match"`
	Teams []teamViewDTO `json:"teams"`
}

type livePageDTO struct {
	Matches   []matchViewDTO `json:"matches"`
	Formats   []string       `json:"formats"`
	FeedStale bool           `json:"feedStale"`
}

func (h *Handler) GetLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveMatches")
	defer span.End()

	format := r.URL.Query().Get("format")
	page, err := h.liveService.LiveMatches(ctx, format)
	if err != nil {
		h.logger.ErrorContext(ctx, "live matches failed", "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	views := make([]matchViewDTO, 0, len(page.Views))
	for _, view := range page.Views {
		views = append(views, matchViewToDTO(ctx, view))
	}

	writeSuccess(ctx, w, http.StatusOK, livePageDTO{
		Matches:   views,
		Formats:   page.Formats,
		FeedStale: page.FeedStale,
	})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	format := r.URL.Query().Get("format")
	matches, err := h.matchService.ListMatches(ctx, format)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.GetMatchView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(ctx, view))
}

func matchToDTO(_ context.Context, m match.Match) matchDTO {
	return matchDTO{
		MatchID:    m.ID,
		SeriesID:   m.SeriesID,
		SeriesName: m.SeriesName,
		MatchDescr: m.Descr,
		Format:     m.Format,
		Venue:      m.Venue,
		City:       m.City,
		Status:     m.Status,
	}
}

func matchViewToDTO(ctx context.Context, view match.View) matchViewDTO {
	teams := make([]teamViewDTO, 0, len(view.Teams))
	for _, teamView := range view.Teams {
		innings := make([]inningsDTO, 0, len(teamView.Innings))
		for _, row := range teamView.Innings {
			innings = append(innings, inningsDTO{
				InningsNumber: row.InningsNumber,
				Runs:          row.Runs,
				Wickets:       row.Wickets,
				Overs:         row.Overs,
			})
		}
		teams = append(teams, teamViewDTO{
			TeamID:   teamView.Team.TeamID,
			TeamName: teamView.Team.Name,
			Innings:  innings,
		})
	}

	return matchViewDTO{
		Match: matchToDTO(ctx, view.Match),
		Teams: teams,
	}
}
