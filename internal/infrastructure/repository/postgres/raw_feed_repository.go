package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/cricket-dashboard/internal/domain/rawfeed"
	qb "github.com/cricstats/cricket-dashboard/internal/platform/querybuilder"
)

type RawFeedRepository struct {
	db *sqlx.DB
}

func NewRawFeedRepository(db *sqlx.DB) *RawFeedRepository {
	return &RawFeedRepository{db: db}
}

type rawFeedInsertModel struct {
	Source      string    `db:"source"`
	EntityKey   string    `db:"entity_key"`
	PayloadHash string    `db:"payload_hash"`
	Payload     string    `db:"payload"`
	FetchedAt   time.Time `db:"fetched_at"`
}

func (r *RawFeedRepository) Upsert(ctx context.Context, payload rawfeed.Payload) error {
	row := rawFeedInsertModel{
		Source:      payload.Source,
		EntityKey:   payload.EntityKey,
		PayloadHash: payload.PayloadHash,
		Payload:     payload.PayloadJSON,
		FetchedAt:   payload.FetchedAt,
	}
	if row.FetchedAt.IsZero() {
		row.FetchedAt = time.Now().UTC()
	}

	query, args, err := qb.InsertModel("raw_feed_payloads", row, `ON CONFLICT (source, entity_key)
DO UPDATE SET
    payload_hash = EXCLUDED.payload_hash,
    payload = EXCLUDED.payload,
    fetched_at = EXCLUDED.fetched_at`)
	if err != nil {
		return fmt.Errorf("build upsert raw feed payload query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert raw feed payload source=%s key=%s: %w", payload.Source, payload.EntityKey, err)
	}
	return nil
}
