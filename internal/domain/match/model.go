package match

// Match is one live or recent match as reported by the feed. Identity is the
// upstream match id; descriptive fields are last-write-wins on re-ingestion.
// Status is free-form upstream text and is stored as-is.
type Match struct {
	ID         int64
	SeriesID   int64
	SeriesName string
	Descr      string
	Format     string
	Venue      string
	City       string
	Status     string
}

// TeamInMatch is a team as it appeared in one match. Team ids are only
// meaningful scoped to a match; there is no global team registry.
type TeamInMatch struct {
	TeamID  int64
	MatchID int64
	Name    string
}

// InningsScore is one team's score for one innings of one match.
type InningsScore struct {
	MatchID       int64
	TeamID        int64
	InningsNumber int
	Runs          int
	Wickets       int
	Overs         float64
}

// Snapshot bundles the rows derived from one feed match node. All rows are
// upserted together in one transaction.
type Snapshot struct {
	Match   Match
	Teams   []TeamInMatch
	Innings []InningsScore
}

// View is the nested shape the dashboard renders: a match with its teams and
// each team's innings rows.
type View struct {
	Match Match
	Teams []TeamView
}

type TeamView struct {
	Team    TeamInMatch
	Innings []InningsScore
}

// Summary holds the dashboard overview counts.
type Summary struct {
	MatchCount  int
	SeriesCount int
}
