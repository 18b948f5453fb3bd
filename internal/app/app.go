package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cricstats/cricket-dashboard/external/cricbuzz"
	"github.com/cricstats/cricket-dashboard/internal/config"
	"github.com/cricstats/cricket-dashboard/internal/domain/player"
	cachedrepo "github.com/cricstats/cricket-dashboard/internal/infrastructure/repository/cache"
	"github.com/cricstats/cricket-dashboard/internal/infrastructure/repository/postgres"
	"github.com/cricstats/cricket-dashboard/internal/interfaces/httpapi"
	basecache "github.com/cricstats/cricket-dashboard/internal/platform/cache"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
	"github.com/cricstats/cricket-dashboard/internal/platform/resilience"
	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

// App bundles the HTTP server with the resources it owns.
type App struct {
	Server *http.Server
	DB     interface{ Close() error }
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewJSON(cfg.LogLevel)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	matchRepo := postgres.NewMatchRepository(db)
	var playerRepo player.Repository = postgres.NewPlayerRepository(db)
	if cfg.CacheEnabled {
		playerRepo = cachedrepo.NewPlayerRepository(playerRepo, basecache.NewStore(cfg.CacheTTL))
	}
	analyticsRepo := postgres.NewAnalyticsRepository(db)
	rawFeedRepo := postgres.NewRawFeedRepository(db)

	var feedProvider usecase.LiveFeedProvider = usecase.DisabledFeedProvider{}
	if cfg.FeedEnabled {
		feedProvider = cricbuzz.NewClient(cricbuzz.ClientConfig{
			BaseURL:    cfg.FeedBaseURL,
			APIKey:     cfg.FeedAPIKey,
			APIHost:    cfg.FeedAPIHost,
			Timeout:    cfg.FeedTimeout,
			MaxRetries: cfg.FeedMaxRetries,
			CacheTTL:   cfg.FeedCacheTTL,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
	}

	ingestionSvc := usecase.NewIngestionService(matchRepo, rawFeedRepo, logger)
	liveSvc := usecase.NewLiveScoreService(feedProvider, ingestionSvc, matchRepo, logger)
	matchSvc := usecase.NewMatchService(matchRepo)
	playerSvc := usecase.NewPlayerService(playerRepo, feedProvider)
	analyticsSvc := usecase.NewAnalyticsService(analyticsRepo, logger)
	dashboardSvc := usecase.NewDashboardService(matchRepo, playerRepo)

	apiLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	handler := httpapi.NewHandler(liveSvc, matchSvc, playerSvc, analyticsSvc, dashboardSvc, apiLogger)
	router := httpapi.NewRouter(handler, apiLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, DB: db}, nil
}

func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func slogLevel(level logging.Level) slog.Level {
	switch level {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
