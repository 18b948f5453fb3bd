package analytics

import "context"

// Repository runs read-only analytics SQL against the warehouse.
type Repository interface {
	// RunQuery executes the statement and returns every row with column order
	// preserved.
	RunQuery(ctx context.Context, query string) (*Result, error)
	// TableExists reports whether the named table is present in the current
	// schema search path.
	TableExists(ctx context.Context, table string) (bool, error)
}
