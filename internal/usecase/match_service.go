package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
)

// MatchService is the store-backed read side: everything it returns comes
// from the database, never directly from the feed.
type MatchService struct {
	matchRepo match.Reader
}

func NewMatchService(matchRepo match.Reader) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) ListMatches(ctx context.Context, format string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.ListMatches(ctx, strings.TrimSpace(format))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (s *MatchService) ListFormats(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListFormats")
	defer span.End()

	formats, err := s.matchRepo.ListFormats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	return formats, nil
}

// GetMatchView assembles the nested scoreboard for one match.
func (s *MatchService) GetMatchView(ctx context.Context, matchID int64) (match.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatchView")
	defer span.End()

	if matchID <= 0 {
		return match.View{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return match.View{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.View{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	teams, err := s.matchRepo.ListTeamsByMatch(ctx, matchID)
	if err != nil {
		return match.View{}, fmt.Errorf("list teams by match: %w", err)
	}
	innings, err := s.matchRepo.ListInningsByMatch(ctx, matchID)
	if err != nil {
		return match.View{}, fmt.Errorf("list innings by match: %w", err)
	}

	return buildMatchView(m, teams, innings), nil
}

// BuildViews nests teams and innings under their matches for a whole listing.
func BuildViews(matches []match.Match, teams []match.TeamInMatch, innings []match.InningsScore) []match.View {
	teamsByMatch := make(map[int64][]match.TeamInMatch, len(matches))
	for _, team := range teams {
		teamsByMatch[team.MatchID] = append(teamsByMatch[team.MatchID], team)
	}
	inningsByMatch := make(map[int64][]match.InningsScore, len(matches))
	for _, row := range innings {
		inningsByMatch[row.MatchID] = append(inningsByMatch[row.MatchID], row)
	}

	views := make([]match.View, 0, len(matches))
	for _, m := range matches {
		views = append(views, buildMatchView(m, teamsByMatch[m.ID], inningsByMatch[m.ID]))
	}
	return views
}

func buildMatchView(m match.Match, teams []match.TeamInMatch, innings []match.InningsScore) match.View {
	view := match.View{Match: m}
	deduped := dedupeInnings(innings)

	for _, team := range teams {
		teamView := match.TeamView{Team: team}
		for _, row := range deduped {
			if row.TeamID == team.TeamID {
				teamView.Innings = append(teamView.Innings, row)
			}
		}
		sort.Slice(teamView.Innings, func(i, j int) bool {
			return teamView.Innings[i].InningsNumber < teamView.Innings[j].InningsNumber
		})
		view.Teams = append(view.Teams, teamView)
	}
	return view
}

// dedupeInnings keeps one row per (team_id, innings_number). Later rows win,
// so a refreshed score replaces the stale one when the input carries both.
func dedupeInnings(innings []match.InningsScore) []match.InningsScore {
	type key struct {
		teamID int64
		number int
	}
	index := make(map[key]int, len(innings))
	out := make([]match.InningsScore, 0, len(innings))
	for _, row := range innings {
		k := key{teamID: row.TeamID, number: row.InningsNumber}
		if at, ok := index[k]; ok {
			out[at] = row
			continue
		}
		index[k] = len(out)
		out = append(out, row)
	}
	return out
}
