package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dashboard/summary", handler.GetDashboardSummary)

	mux.HandleFunc("GET /v1/matches/live", handler.GetLiveMatches)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("POST /v1/players/import", handler.ImportPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("GET /v1/analytics/questions", handler.ListAnalyticsQuestions)
	mux.HandleFunc("GET /v1/analytics/questions/{key}", handler.GetAnalyticsQuestion)
	mux.HandleFunc("POST /v1/analytics/questions/{key}/run", handler.RunAnalyticsQuestion)
	mux.HandleFunc("GET /v1/analytics/questions/{key}/export", handler.ExportAnalyticsQuestion)
	mux.HandleFunc("POST /v1/analytics/run", handler.RunAnalyticsSQL)
}
