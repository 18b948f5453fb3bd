package cricbuzz

import (
	"strconv"
	"strings"

	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

// Wire shapes for the /matches/v1/live envelope. Every level is optional in
// practice: ad nodes appear as seriesMatches entries without a
// seriesAdWrapper, and matches without a matchId are placeholders.

type liveFeedEnvelope struct {
	TypeMatches []typeMatch `json:"typeMatches"`
}

type typeMatch struct {
	MatchType     string        `json:"matchType"`
	SeriesMatches []seriesMatch `json:"seriesMatches"`
}

type seriesMatch struct {
	SeriesAdWrapper *seriesAdWrapper `json:"seriesAdWrapper"`
}

type seriesAdWrapper struct {
	SeriesID   int64       `json:"seriesId"`
	SeriesName string      `json:"seriesName"`
	Matches    []feedMatch `json:"matches"`
}

type feedMatch struct {
	MatchInfo  *matchInfo  `json:"matchInfo"`
	MatchScore *matchScore `json:"matchScore"`
}

type matchInfo struct {
	MatchID     int64      `json:"matchId"`
	SeriesID    int64      `json:"seriesId"`
	MatchDesc   string     `json:"matchDesc"`
	MatchFormat string     `json:"matchFormat"`
	State       string     `json:"state"`
	Status      string     `json:"status"`
	Team1       *teamInfo  `json:"team1"`
	Team2       *teamInfo  `json:"team2"`
	VenueInfo   *venueInfo `json:"venueInfo"`
}

type teamInfo struct {
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
}

type venueInfo struct {
	Ground string `json:"ground"`
	City   string `json:"city"`
}

type matchScore struct {
	Team1Score map[string]inningsScore `json:"team1Score"`
	Team2Score map[string]inningsScore `json:"team2Score"`
}

type inningsScore struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
}

type playerSearchEnvelope struct {
	Players []playerSearchItem `json:"player"`
}

type playerSearchItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TeamName string `json:"teamName"`
	DOB      string `json:"dob"`
}

// flattenLiveFeed walks the envelope and produces one ExternalLiveMatch per
// playable match node. Nodes without a matchId (ads, placeholders) are
// skipped; series identity comes from the wrapper, not the match.
func flattenLiveFeed(env liveFeedEnvelope) []usecase.ExternalLiveMatch {
	out := make([]usecase.ExternalLiveMatch, 0, 16)
	for _, tm := range env.TypeMatches {
		for _, sm := range tm.SeriesMatches {
			wrapper := sm.SeriesAdWrapper
			if wrapper == nil {
				continue
			}
			for _, m := range wrapper.Matches {
				info := m.MatchInfo
				if info == nil || info.MatchID <= 0 {
					continue
				}
				out = append(out, flattenMatch(*wrapper, info, m.MatchScore))
			}
		}
	}
	return out
}

func flattenMatch(wrapper seriesAdWrapper, info *matchInfo, score *matchScore) usecase.ExternalLiveMatch {
	ext := usecase.ExternalLiveMatch{
		MatchID:     info.MatchID,
		SeriesID:    wrapper.SeriesID,
		SeriesName:  strings.TrimSpace(wrapper.SeriesName),
		MatchDesc:   strings.TrimSpace(info.MatchDesc),
		MatchFormat: strings.TrimSpace(info.MatchFormat),
		Status:      strings.TrimSpace(info.Status),
	}
	if ext.SeriesID <= 0 {
		ext.SeriesID = info.SeriesID
	}
	if info.VenueInfo != nil {
		ext.Venue = strings.TrimSpace(info.VenueInfo.Ground)
		ext.City = strings.TrimSpace(info.VenueInfo.City)
	}

	sides := []*teamInfo{info.Team1, info.Team2}
	for _, side := range sides {
		if side == nil || side.TeamID <= 0 {
			continue
		}
		ext.Teams = append(ext.Teams, usecase.ExternalTeam{
			TeamID: side.TeamID,
			Name:   strings.TrimSpace(side.TeamName),
		})
	}

	if score == nil {
		return ext
	}
	scoresBySide := []map[string]inningsScore{score.Team1Score, score.Team2Score}
	for idx, byKey := range scoresBySide {
		side := sides[idx]
		if side == nil || side.TeamID <= 0 {
			continue
		}
		for key, inngs := range byKey {
			ext.Innings = append(ext.Innings, usecase.ExternalInnings{
				TeamID:        side.TeamID,
				InningsNumber: parseInningsNumber(key),
				Runs:          inngs.Runs,
				Wickets:       inngs.Wickets,
				Overs:         inngs.Overs,
			})
		}
	}
	return ext
}

// parseInningsNumber reads the last character of an innings key such as
// "inngs1" or "inngs2". The feed numbers innings with a single final digit;
// anything else maps to innings 1.
func parseInningsNumber(key string) int {
	if key == "" {
		return 1
	}
	last := key[len(key)-1]
	if last < '1' || last > '9' {
		return 1
	}
	return int(last - '0')
}

func parsePlayerSearch(env playerSearchEnvelope) []usecase.ExternalPlayer {
	out := make([]usecase.ExternalPlayer, 0, len(env.Players))
	for _, item := range env.Players {
		id, err := strconv.ParseInt(strings.TrimSpace(item.ID), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		out = append(out, usecase.ExternalPlayer{
			PlayerID: id,
			FullName: strings.TrimSpace(item.Name),
			TeamName: strings.TrimSpace(item.TeamName),
		})
	}
	return out
}
