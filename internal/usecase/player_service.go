package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cricstats/cricket-dashboard/internal/domain/player"
)

const defaultPlayerImportLimit = 3

// PlayerService owns the players table: local CRUD plus the provider-backed
// search and import paths.
type PlayerService struct {
	playerRepo player.Repository
	provider   LiveFeedProvider
}

func NewPlayerService(playerRepo player.Repository, provider LiveFeedProvider) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		provider:   provider,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if limit <= 0 {
		limit = 100
	}
	players, err := s.playerRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	if err := normalizePlayer(&p); err != nil {
		return player.Player{}, err
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, p.ID); err != nil {
		return player.Player{}, fmt.Errorf("check player: %w", err)
	} else if exists {
		return player.Player{}, fmt.Errorf("%w: player=%d already exists", ErrInvalidInput, p.ID)
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if err := normalizePlayer(&p); err != nil {
		return player.Player{}, err
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, p.ID); err != nil {
		return player.Player{}, fmt.Errorf("check player: %w", err)
	} else if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, p.ID)
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return p, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if playerID <= 0 {
		return fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return fmt.Errorf("check player: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// SearchPlayers proxies the provider search without touching the store.
func (s *PlayerService) SearchPlayers(ctx context.Context, name string) ([]ExternalPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	players, err := s.provider.SearchPlayers(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return players, nil
}

// ImportPlayers searches the provider and upserts the top matches into the
// local table, refreshing name and team on conflict.
func (s *PlayerService) ImportPlayers(ctx context.Context, name string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ImportPlayers")
	defer span.End()

	found, err := s.SearchPlayers(ctx, name)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPlayerImportLimit
	}
	if len(found) > limit {
		found = found[:limit]
	}

	imported := make([]player.Player, 0, len(found))
	for _, ext := range found {
		item := player.Player{
			ID:       ext.PlayerID,
			FullName: ext.FullName,
			TeamName: ext.TeamName,
			Country:  ext.Country,
		}
		if item.TeamName == "" {
			item.TeamName = "N/A"
		}
		if err := s.playerRepo.Upsert(ctx, item); err != nil {
			return nil, fmt.Errorf("import player=%d: %w", item.ID, err)
		}
		imported = append(imported, item)
	}
	return imported, nil
}

func normalizePlayer(p *player.Player) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.TeamName = strings.TrimSpace(p.TeamName)
	p.BattingStyle = strings.TrimSpace(p.BattingStyle)
	p.BowlingStyle = strings.TrimSpace(p.BowlingStyle)
	p.Country = strings.TrimSpace(p.Country)

	if p.ID <= 0 {
		return fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	if p.FullName == "" {
		return fmt.Errorf("%w: player full name is required", ErrInvalidInput)
	}
	return nil
}
