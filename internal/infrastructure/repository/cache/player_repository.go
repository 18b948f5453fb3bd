package cache

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/cricstats/cricket-dashboard/internal/domain/player"
	basecache "github.com/cricstats/cricket-dashboard/internal/platform/cache"
)

// PlayerRepository caches the read side of the player store. Writes go
// straight through and bump a generation counter, which orphans every key
// written by the previous generation; the TTL reclaims the memory.
type PlayerRepository struct {
	next       player.Repository
	cache      *basecache.Store
	generation atomic.Int64
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, limit int) ([]player.Player, error) {
	key := r.key("player:list:" + strconv.Itoa(limit))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	key := r.key("player:id:" + strconv.FormatInt(playerID, 10))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	key := r.key("player:count")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return r.next.Count(ctx)
	})
	if err != nil {
		return 0, err
	}

	count, _ := v.(int)
	return count, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.generation.Add(1)
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.generation.Add(1)
	return nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, p player.Player) error {
	if err := r.next.Upsert(ctx, p); err != nil {
		return err
	}
	r.generation.Add(1)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.generation.Add(1)
	return nil
}

func (r *PlayerRepository) key(base string) string {
	return "g" + strconv.FormatInt(r.generation.Load(), 10) + ":" + base
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}
