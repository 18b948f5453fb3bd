package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
)

// MatchRepository is an in-memory match.Repository used in tests and local
// development without a database.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	teams   map[int64][]match.TeamInMatch
	innings map[int64]map[[2]int64]match.InningsScore
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		matches: make(map[int64]match.Match),
		teams:   make(map[int64][]match.TeamInMatch),
		innings: make(map[int64]map[[2]int64]match.InningsScore),
	}
}

func (r *MatchRepository) UpsertSnapshots(_ context.Context, snapshots []match.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, snapshot := range snapshots {
		r.matches[snapshot.Match.ID] = snapshot.Match

		for _, team := range snapshot.Teams {
			existing := r.teams[team.MatchID]
			replaced := false
			for idx := range existing {
				if existing[idx].TeamID == team.TeamID {
					existing[idx] = team
					replaced = true
					break
				}
			}
			if !replaced {
				existing = append(existing, team)
			}
			r.teams[team.MatchID] = existing
		}

		for _, row := range snapshot.Innings {
			byKey := r.innings[row.MatchID]
			if byKey == nil {
				byKey = make(map[[2]int64]match.InningsScore)
				r.innings[row.MatchID] = byKey
			}
			byKey[[2]int64{row.TeamID, int64(row.InningsNumber)}] = row
		}
	}
	return nil
}

func (r *MatchRepository) ListMatches(_ context.Context, format string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if format == "" || m.Format == format {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MatchRepository) GetMatch(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[matchID]
	return m, ok, nil
}

func (r *MatchRepository) ListTeamsByMatch(_ context.Context, matchID int64) ([]match.TeamInMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teams[matchID]
	out := make([]match.TeamInMatch, len(teams))
	copy(out, teams)
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

func (r *MatchRepository) ListInningsByMatch(_ context.Context, matchID int64) ([]match.InningsScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey := r.innings[matchID]
	out := make([]match.InningsScore, 0, len(byKey))
	for _, row := range byKey {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		return out[i].InningsNumber < out[j].InningsNumber
	})
	return out, nil
}

func (r *MatchRepository) ListFormats(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, 4)
	formats := make([]string, 0, 4)
	for _, m := range r.matches {
		if m.Format == "" || seen[m.Format] {
			continue
		}
		seen[m.Format] = true
		formats = append(formats, m.Format)
	}
	sort.Strings(formats)
	return formats, nil
}

func (r *MatchRepository) Summary(_ context.Context) (match.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	series := make(map[int64]bool, len(r.matches))
	for _, m := range r.matches {
		series[m.SeriesID] = true
	}
	return match.Summary{MatchCount: len(r.matches), SeriesCount: len(series)}, nil
}
