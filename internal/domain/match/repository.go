package match

import "context"

// Writer persists feed snapshots. UpsertSnapshots must apply all rows of all
// snapshots atomically: either the whole batch lands or none of it does.
type Writer interface {
	UpsertSnapshots(ctx context.Context, snapshots []Snapshot) error
}

// Reader exposes the store-backed display queries. An empty format selects
// all matches.
type Reader interface {
	ListMatches(ctx context.Context, format string) ([]Match, error)
	GetMatch(ctx context.Context, matchID int64) (Match, bool, error)
	ListTeamsByMatch(ctx context.Context, matchID int64) ([]TeamInMatch, error)
	ListInningsByMatch(ctx context.Context, matchID int64) ([]InningsScore, error)
	ListFormats(ctx context.Context) ([]string, error)
	Summary(ctx context.Context) (Summary, error)
}

// Repository combines the write and read sides.
type Repository interface {
	Writer
	Reader
}
