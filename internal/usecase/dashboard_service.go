package usecase

import (
	"context"
	"fmt"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
	"github.com/cricstats/cricket-dashboard/internal/domain/player"
)

// DashboardSummary is the landing-page overview.
type DashboardSummary struct {
	MatchCount  int `json:"matchCount"`
	SeriesCount int `json:"seriesCount"`
	PlayerCount int `json:"playerCount"`
}

type DashboardService struct {
	matchRepo  match.Reader
	playerRepo player.Repository
}

func NewDashboardService(matchRepo match.Reader, playerRepo player.Repository) *DashboardService {
	return &DashboardService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Summary")
	defer span.End()

	stored, err := s.matchRepo.Summary(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("match summary: %w", err)
	}
	players, err := s.playerRepo.Count(ctx)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("count players: %w", err)
	}

	return DashboardSummary{
		MatchCount:  stored.MatchCount,
		SeriesCount: stored.SeriesCount,
		PlayerCount: players,
	}, nil
}
