package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
)

type fakeMatchReader struct {
	matches []match.Match
	teams   map[int64][]match.TeamInMatch
	innings map[int64][]match.InningsScore
	formats []string
	summary match.Summary
	err     error
}

func (f *fakeMatchReader) ListMatches(_ context.Context, format string) ([]match.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	if format == "" {
		return f.matches, nil
	}
	out := make([]match.Match, 0, len(f.matches))
	for _, m := range f.matches {
		if m.Format == format {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatchReader) GetMatch(_ context.Context, matchID int64) (match.Match, bool, error) {
	if f.err != nil {
		return match.Match{}, false, f.err
	}
	for _, m := range f.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (f *fakeMatchReader) ListTeamsByMatch(_ context.Context, matchID int64) ([]match.TeamInMatch, error) {
	return f.teams[matchID], f.err
}

func (f *fakeMatchReader) ListInningsByMatch(_ context.Context, matchID int64) ([]match.InningsScore, error) {
	return f.innings[matchID], f.err
}

func (f *fakeMatchReader) ListFormats(_ context.Context) ([]string, error) {
	return f.formats, f.err
}

func (f *fakeMatchReader) Summary(_ context.Context) (match.Summary, error) {
	return f.summary, f.err
}

func storedMatchReader() *fakeMatchReader {
	return &fakeMatchReader{
		matches: []match.Match{
			{ID: 555, SeriesID: 10, SeriesName: "Test Series", Format: "TEST"},
			{ID: 700, SeriesID: 11, SeriesName: "ODI Cup", Format: "ODI"},
		},
		teams: map[int64][]match.TeamInMatch{
			555: {
				{TeamID: 2, MatchID: 555, Name: "India"},
				{TeamID: 4, MatchID: 555, Name: "Australia"},
			},
		},
		innings: map[int64][]match.InningsScore{
			555: {
				{MatchID: 555, TeamID: 2, InningsNumber: 1, Runs: 240, Wickets: 5, Overs: 48.0},
				{MatchID: 555, TeamID: 2, InningsNumber: 1, Runs: 250, Wickets: 6, Overs: 50.0},
				{MatchID: 555, TeamID: 4, InningsNumber: 1, Runs: 180, Wickets: 10, Overs: 44.3},
			},
		},
		formats: []string{"ODI", "TEST"},
	}
}

func TestGetMatchViewDedupesInnings(t *testing.T) {
	t.Parallel()

	service := NewMatchService(storedMatchReader())
	view, err := service.GetMatchView(context.Background(), 555)
	if err != nil {
		t.Fatalf("get match view: %v", err)
	}

	if len(view.Teams) != 2 {
		t.Fatalf("expected 2 team views, got=%d", len(view.Teams))
	}
	india := view.Teams[0]
	if india.Team.Name != "India" {
		t.Fatalf("unexpected first team: %+v", india.Team)
	}
	if len(india.Innings) != 1 {
		t.Fatalf("expected duplicate (team, innings) rows collapsed to 1, got=%d", len(india.Innings))
	}
	if india.Innings[0].Runs != 250 {
		t.Fatalf("later duplicate must win, got runs=%d", india.Innings[0].Runs)
	}
}

func TestGetMatchViewNotFound(t *testing.T) {
	t.Parallel()

	service := NewMatchService(storedMatchReader())
	if _, err := service.GetMatchView(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.GetMatchView(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListMatchesFormatFilter(t *testing.T) {
	t.Parallel()

	service := NewMatchService(storedMatchReader())
	matches, err := service.ListMatches(context.Background(), " ODI ")
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != 700 {
		t.Fatalf("expected only the ODI match, got=%+v", matches)
	}
}

func TestBuildViewsNestsByMatch(t *testing.T) {
	t.Parallel()

	reader := storedMatchReader()
	views := BuildViews(reader.matches, reader.teams[555], reader.innings[555])
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got=%d", len(views))
	}
	if len(views[0].Teams) != 2 || len(views[1].Teams) != 0 {
		t.Fatalf("teams nested under wrong matches: %+v", views)
	}
}
