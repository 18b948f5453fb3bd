package player

import "context"

type Repository interface {
	List(ctx context.Context, limit int) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	// Upsert is the feed-import path: insert, or refresh name/team on conflict.
	Upsert(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID int64) error
	Count(ctx context.Context) (int, error)
}
