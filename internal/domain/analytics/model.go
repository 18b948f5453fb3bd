package analytics

// Question is one entry of the built-in query catalog. SQL is a ready-to-run
// statement; Requires lists the tables it reads so callers can warn about
// missing ones before execution.
type Question struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	SQL      string   `json:"sql"`
	Requires []string `json:"requires"`
}

// Result is the generic outcome of running a catalog (or ad-hoc) query.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Missing []string `json:"missingTables,omitempty"`
}
