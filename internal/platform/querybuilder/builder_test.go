package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("match_id", "status").From("match_details").
		Where(Eq("match_format", "ODI")).
		OrderBy("match_id DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT match_id, status FROM match_details WHERE match_format = $1 ORDER BY match_id DESC LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\ngot  %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"ODI"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectRequiresTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select("match_id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInCondition(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("teams").
		Where(In("match_id", []any{int64(1), int64(2)})).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT * FROM teams WHERE match_id IN ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInConditionEmptyNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("teams").
		Where(In("match_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT * FROM teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertWithConflictSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("teams").
		Columns("team_id", "match_id", "team_name").
		Values(int64(1), int64(555), "India").
		Suffix("ON CONFLICT (team_id, match_id) DO UPDATE SET team_name = EXCLUDED.team_name").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO teams (team_id, match_id, team_name) VALUES ($1, $2, $3) " +
		"ON CONFLICT (team_id, match_id) DO UPDATE SET team_name = EXCLUDED.team_name"
	if query != want {
		t.Fatalf("unexpected query:\ngot  %s\nwant %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertRowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("teams").
		Columns("team_id", "match_id").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}

func TestInsertModelUsesDBTags(t *testing.T) {
	t.Parallel()

	type row struct {
		MatchID  int64  `db:"match_id"`
		Status   string `db:"status"`
		internal string `db:"-"`
		Skipped  string
	}

	query, args, err := InsertModel("match_details", row{MatchID: 555, Status: "live"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "INSERT INTO match_details (match_id, status) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(555), "live"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Update("players").
		Set("full_name", "V Kohli").
		Set("team_name", "India").
		Where(Eq("player_id", int64(42))).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE players SET full_name = $1, team_name = $2 WHERE player_id = $3"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"V Kohli", "India", int64(42)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresConditions(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatal("expected error for unbounded delete")
	}

	query, args, err := DeleteFrom("players").Where(Eq("player_id", int64(7))).ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "DELETE FROM players WHERE player_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(7)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestExprRewritesPlaceholders(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("innings_scores").
		Where(
			Eq("match_id", int64(555)),
			Expr("innings_number >= ?", 2),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT * FROM innings_scores WHERE match_id = $1 AND innings_number >= $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(555), 2}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
