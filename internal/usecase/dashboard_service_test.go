package usecase

import (
	"context"
	"testing"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
	"github.com/cricstats/cricket-dashboard/internal/domain/player"
)

func TestDashboardSummary(t *testing.T) {
	t.Parallel()

	reader := storedMatchReader()
	reader.summary = match.Summary{MatchCount: 2, SeriesCount: 2}
	players := newFakePlayerRepo(
		player.Player{ID: 1413, FullName: "Virat Kohli"},
		player.Player{ID: 576, FullName: "Rohit Sharma"},
	)

	service := NewDashboardService(reader, players)
	summary, err := service.Summary(context.Background())
	if err != nil {
		t.Fatalf("dashboard summary: %v", err)
	}
	if summary.MatchCount != 2 || summary.SeriesCount != 2 || summary.PlayerCount != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
