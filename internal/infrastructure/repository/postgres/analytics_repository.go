package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/cricket-dashboard/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// RunQuery executes an arbitrary read statement and returns the full row set.
// Column order follows the statement; values are normalized so []byte cells
// render as strings.
func (r *AnalyticsRepository) RunQuery(ctx context.Context, query string) (*analytics.Result, error) {
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("run analytics query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read result columns: %w", err)
	}

	result := &analytics.Result{Columns: columns, Rows: make([][]any, 0, 64)}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		for idx, value := range values {
			if raw, ok := value.([]byte); ok {
				values[idx] = string(raw)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate result rows: %w", err)
	}
	return result, nil
}

// TableExists resolves the name through to_regclass, which honors the current
// search path and never errors on absent tables.
func (r *AnalyticsRepository) TableExists(ctx context.Context, table string) (bool, error) {
	var regclass *string
	if err := r.db.GetContext(ctx, &regclass, "SELECT to_regclass($1)::text", table); err != nil {
		return false, fmt.Errorf("check table=%s: %w", table, err)
	}
	return regclass != nil, nil
}
