package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
)

// LivePage is one render of the live dashboard. FeedStale is set when the
// provider could not be reached and the page shows the last stored scores.
type LivePage struct {
	Views     []match.View
	Formats   []string
	FeedStale bool
}

// LiveScoreService drives the fetch-ingest-render cycle. Every page request
// goes through the provider (which memoizes for its TTL), lands in the store,
// and is then read back so the page always reflects persisted state.
type LiveScoreService struct {
	provider  LiveFeedProvider
	ingestion *IngestionService
	matchRepo match.Reader
	logger    *logging.Logger
}

func NewLiveScoreService(provider LiveFeedProvider, ingestion *IngestionService, matchRepo match.Reader, logger *logging.Logger) *LiveScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveScoreService{
		provider:  provider,
		ingestion: ingestion,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// LiveMatches refreshes the store from the feed and returns the nested views,
// optionally filtered by format. A feed outage degrades to stored data with
// FeedStale set instead of failing the page.
func (s *LiveScoreService) LiveMatches(ctx context.Context, format string) (LivePage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.LiveMatches")
	defer span.End()

	page := LivePage{}

	feed, err := s.provider.FetchLiveMatches(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return LivePage{}, ctx.Err()
		}
		page.FeedStale = true
		s.logger.WarnContext(ctx, "live feed fetch failed, serving stored scores", "error", err)
	} else if _, err := s.ingestion.IngestSnapshot(ctx, feed); err != nil {
		return LivePage{}, fmt.Errorf("ingest live feed: %w", err)
	}

	format = strings.TrimSpace(format)
	matches, err := s.matchRepo.ListMatches(ctx, format)
	if err != nil {
		return LivePage{}, fmt.Errorf("list matches: %w", err)
	}

	for _, m := range matches {
		teams, err := s.matchRepo.ListTeamsByMatch(ctx, m.ID)
		if err != nil {
			return LivePage{}, fmt.Errorf("list teams match=%d: %w", m.ID, err)
		}
		innings, err := s.matchRepo.ListInningsByMatch(ctx, m.ID)
		if err != nil {
			return LivePage{}, fmt.Errorf("list innings match=%d: %w", m.ID, err)
		}
		page.Views = append(page.Views, buildMatchView(m, teams, innings))
	}

	formats, err := s.matchRepo.ListFormats(ctx)
	if err != nil {
		return LivePage{}, fmt.Errorf("list formats: %w", err)
	}
	page.Formats = formats

	return page, nil
}
