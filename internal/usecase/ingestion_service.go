package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
	"github.com/cricstats/cricket-dashboard/internal/domain/rawfeed"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
)

// IngestionService turns a fetched live feed into store rows. One call maps
// to one atomic write batch: every match, team, and innings row from the feed
// lands together or not at all.
type IngestionService struct {
	matchWriter match.Writer
	rawRepo     rawfeed.Repository
	logger      *logging.Logger
}

func NewIngestionService(matchWriter match.Writer, rawRepo rawfeed.Repository, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		matchWriter: matchWriter,
		rawRepo:     rawRepo,
		logger:      logger,
	}
}

// IngestSnapshot persists the feed and returns the number of matches written.
// An empty feed is a no-op, not an error: the provider legitimately reports
// zero live matches between fixtures. Raw payload archiving is best-effort
// and never fails the ingest.
func (s *IngestionService) IngestSnapshot(ctx context.Context, feed ExternalLiveFeed) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestSnapshot")
	defer span.End()

	snapshots := make([]match.Snapshot, 0, len(feed.Matches))
	for _, item := range feed.Matches {
		if item.MatchID <= 0 {
			continue
		}
		snapshots = append(snapshots, buildSnapshot(item))
	}

	if len(snapshots) > 0 {
		if err := s.matchWriter.UpsertSnapshots(ctx, snapshots); err != nil {
			return 0, fmt.Errorf("upsert live snapshots: %w", err)
		}
	}

	s.archivePayloads(ctx, feed.RawPayloads)
	return len(snapshots), nil
}

func (s *IngestionService) archivePayloads(ctx context.Context, payloads []rawfeed.Payload) {
	if s.rawRepo == nil {
		return
	}
	for _, payload := range payloads {
		if err := s.rawRepo.Upsert(ctx, payload); err != nil {
			s.logger.WarnContext(ctx, "archive raw feed payload failed",
				"source", payload.Source,
				"entity_key", payload.EntityKey,
				"error", err,
			)
		}
	}
}

func buildSnapshot(item ExternalLiveMatch) match.Snapshot {
	snapshot := match.Snapshot{
		Match: match.Match{
			ID:         item.MatchID,
			SeriesID:   item.SeriesID,
			SeriesName: strings.TrimSpace(item.SeriesName),
			Descr:      strings.TrimSpace(item.MatchDesc),
			Format:     strings.TrimSpace(item.MatchFormat),
			Venue:      strings.TrimSpace(item.Venue),
			City:       strings.TrimSpace(item.City),
			Status:     strings.TrimSpace(item.Status),
		},
	}

	for _, team := range item.Teams {
		if team.TeamID <= 0 {
			continue
		}
		snapshot.Teams = append(snapshot.Teams, match.TeamInMatch{
			TeamID:  team.TeamID,
			MatchID: item.MatchID,
			Name:    strings.TrimSpace(team.Name),
		})
	}

	for _, inngs := range item.Innings {
		if inngs.TeamID <= 0 {
			continue
		}
		number := inngs.InningsNumber
		if number <= 0 {
			number = 1
		}
		snapshot.Innings = append(snapshot.Innings, match.InningsScore{
			MatchID:       item.MatchID,
			TeamID:        inngs.TeamID,
			InningsNumber: number,
			Runs:          inngs.Runs,
			Wickets:       inngs.Wickets,
			Overs:         inngs.Overs,
		})
	}

	return snapshot
}
