package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
	qb "github.com/cricstats/cricket-dashboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// UpsertSnapshots writes every row of every snapshot in one transaction.
// Conflicting rows are overwritten: the feed is the source of truth and the
// latest fetch wins.
func (r *MatchRepository) UpsertSnapshots(ctx context.Context, snapshots []match.Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert snapshots: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, snapshot := range snapshots {
		if err := upsertMatchDetail(ctx, tx, snapshot.Match); err != nil {
			return err
		}
		for _, team := range snapshot.Teams {
			if err := upsertTeam(ctx, tx, team); err != nil {
				return err
			}
		}
		for _, innings := range snapshot.Innings {
			if err := upsertInnings(ctx, tx, innings); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert snapshots tx: %w", err)
	}
	return nil
}

func upsertMatchDetail(ctx context.Context, tx *sqlx.Tx, m match.Match) error {
	query, args, err := qb.InsertModel("match_details", matchDetailToRow(m), `ON CONFLICT (match_id)
DO UPDATE SET
    series_id = EXCLUDED.series_id,
    series_name = EXCLUDED.series_name,
    match_descr = EXCLUDED.match_descr,
    match_format = EXCLUDED.match_format,
    venue = EXCLUDED.venue,
    city = EXCLUDED.city,
    status = EXCLUDED.status,
    updated_at = now()`)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match=%d: %w", m.ID, err)
	}
	return nil
}

func upsertTeam(ctx context.Context, tx *sqlx.Tx, team match.TeamInMatch) error {
	row := teamTableModel{TeamID: team.TeamID, MatchID: team.MatchID, TeamName: team.Name}
	query, args, err := qb.InsertModel("teams", row, `ON CONFLICT (team_id, match_id)
DO UPDATE SET
    team_name = EXCLUDED.team_name`)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team=%d match=%d: %w", team.TeamID, team.MatchID, err)
	}
	return nil
}

func upsertInnings(ctx context.Context, tx *sqlx.Tx, innings match.InningsScore) error {
	row := inningsScoreTableModel{
		MatchID:       innings.MatchID,
		TeamID:        innings.TeamID,
		InningsNumber: innings.InningsNumber,
		Runs:          innings.Runs,
		Wickets:       innings.Wickets,
		Overs:         innings.Overs,
	}
	query, args, err := qb.InsertModel("innings_scores", row, `ON CONFLICT (match_id, team_id, innings_number)
DO UPDATE SET
    runs = EXCLUDED.runs,
    wickets = EXCLUDED.wickets,
    overs = EXCLUDED.overs`)
	if err != nil {
		return fmt.Errorf("build upsert innings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert innings match=%d team=%d n=%d: %w",
			innings.MatchID, innings.TeamID, innings.InningsNumber, err)
	}
	return nil
}

func (r *MatchRepository) ListMatches(ctx context.Context, format string) ([]match.Match, error) {
	builder := qb.Select("*").From("match_details").OrderBy("match_id DESC")
	if format = strings.TrimSpace(format); format != "" {
		builder = builder.Where(qb.Eq("match_format", format))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchDetailTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchDetailFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetMatch(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("match_details").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchDetailTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match=%d: %w", matchID, err)
	}
	return matchDetailFromRow(row), true, nil
}

func (r *MatchRepository) ListTeamsByMatch(ctx context.Context, matchID int64) ([]match.TeamInMatch, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams match=%d: %w", matchID, err)
	}

	out := make([]match.TeamInMatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.TeamInMatch{TeamID: row.TeamID, MatchID: row.MatchID, Name: row.TeamName})
	}
	return out, nil
}

func (r *MatchRepository) ListInningsByMatch(ctx context.Context, matchID int64) ([]match.InningsScore, error) {
	query, args, err := qb.Select("*").From("innings_scores").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_id", "innings_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select innings query: %w", err)
	}

	var rows []inningsScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select innings match=%d: %w", matchID, err)
	}

	out := make([]match.InningsScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.InningsScore{
			MatchID:       row.MatchID,
			TeamID:        row.TeamID,
			InningsNumber: row.InningsNumber,
			Runs:          row.Runs,
			Wickets:       row.Wickets,
			Overs:         row.Overs,
		})
	}
	return out, nil
}

func (r *MatchRepository) ListFormats(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT match_format").From("match_details").
		OrderBy("match_format").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select formats query: %w", err)
	}

	var formats []string
	if err := r.db.SelectContext(ctx, &formats, query, args...); err != nil {
		return nil, fmt.Errorf("select formats: %w", err)
	}
	return formats, nil
}

func (r *MatchRepository) Summary(ctx context.Context) (match.Summary, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS match_count",
		"COUNT(DISTINCT series_id) AS series_count",
	).From("match_details").ToSQL()
	if err != nil {
		return match.Summary{}, fmt.Errorf("build summary query: %w", err)
	}

	var row struct {
		MatchCount  int `db:"match_count"`
		SeriesCount int `db:"series_count"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Summary{}, fmt.Errorf("select summary: %w", err)
	}
	return match.Summary{MatchCount: row.MatchCount, SeriesCount: row.SeriesCount}, nil
}
