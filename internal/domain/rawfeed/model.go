package rawfeed

import "time"

// Payload archives one raw feed response so ingests can be audited and
// replayed. Identity is (source, entity key); re-fetches overwrite.
type Payload struct {
	Source      string
	EntityKey   string
	PayloadHash string
	PayloadJSON string
	FetchedAt   time.Time
}
