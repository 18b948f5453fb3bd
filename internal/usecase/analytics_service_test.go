package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cricstats/cricket-dashboard/internal/domain/analytics"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
)

type fakeAnalyticsRepo struct {
	result      *analytics.Result
	runErr      error
	tables      map[string]bool
	ranQueries  []string
	tableChecks []string
}

func (f *fakeAnalyticsRepo) RunQuery(_ context.Context, query string) (*analytics.Result, error) {
	f.ranQueries = append(f.ranQueries, query)
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.result, nil
}

func (f *fakeAnalyticsRepo) TableExists(_ context.Context, table string) (bool, error) {
	f.tableChecks = append(f.tableChecks, table)
	return f.tables[table], nil
}

func TestRunQuestionReportsMissingTables(t *testing.T) {
	t.Parallel()

	repo := &fakeAnalyticsRepo{
		result: &analytics.Result{Columns: []string{"full_name"}, Rows: [][]any{{"Virat Kohli"}}},
		tables: map[string]bool{"players": true},
	}
	service := NewAnalyticsService(repo, logging.NewNop())

	result, err := service.RunQuestion(context.Background(), "q3", "")
	if err != nil {
		t.Fatalf("run question: %v", err)
	}
	if len(result.Missing) != 1 || result.Missing[0] != "player_stats_format" {
		t.Fatalf("expected player_stats_format reported missing, got=%+v", result.Missing)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("query must still run despite missing tables, got=%+v", result.Rows)
	}
}

func TestRunQuestionUnknownKey(t *testing.T) {
	t.Parallel()

	service := NewAnalyticsService(&fakeAnalyticsRepo{}, logging.NewNop())
	if _, err := service.RunQuestion(context.Background(), "q99", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunQuestionHonorsSQLOverride(t *testing.T) {
	t.Parallel()

	repo := &fakeAnalyticsRepo{
		result: &analytics.Result{},
		tables: map[string]bool{"players": true},
	}
	service := NewAnalyticsService(repo, logging.NewNop())

	override := "SELECT full_name FROM players WHERE country = 'Australia'"
	if _, err := service.RunQuestion(context.Background(), "q1", override); err != nil {
		t.Fatalf("run question with override: %v", err)
	}
	if len(repo.ranQueries) != 1 || repo.ranQueries[0] != override {
		t.Fatalf("expected override to be executed, ran=%+v", repo.ranQueries)
	}
}

func TestRunSQLRejectsWrites(t *testing.T) {
	t.Parallel()

	service := NewAnalyticsService(&fakeAnalyticsRepo{result: &analytics.Result{}}, logging.NewNop())

	cases := []string{
		"DELETE FROM players",
		"UPDATE players SET full_name = 'x'",
		"DROP TABLE players",
		"SELECT 1; DELETE FROM players",
		"  ",
	}
	for _, stmt := range cases {
		if _, err := service.RunSQL(context.Background(), stmt); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %q, got %v", stmt, err)
		}
	}

	if _, err := service.RunSQL(context.Background(), "WITH t AS (SELECT 1) SELECT * FROM t;"); err != nil {
		t.Fatalf("WITH statement must be allowed: %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	service := NewAnalyticsService(&fakeAnalyticsRepo{}, logging.NewNop())
	result := &analytics.Result{
		Columns: []string{"full_name", "runs"},
		Rows: [][]any{
			{"Virat Kohli", int64(13000)},
			{"Rohit, Sharma", nil},
		},
	}

	out, err := service.ExportCSV(context.Background(), result)
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got=%d lines", len(lines))
	}
	if lines[0] != "full_name,runs" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[2] != `"Rohit, Sharma",` {
		t.Fatalf("expected quoted comma and empty nil cell, got=%q", lines[2])
	}
}
