package usecase

import (
	"context"
	"fmt"

	"github.com/cricstats/cricket-dashboard/internal/domain/rawfeed"
)

// LiveFeedProvider is the outbound port for the cricket score feed.
type LiveFeedProvider interface {
	// FetchLiveMatches returns every live match currently reported by the
	// provider, flattened across series. Responses are memoized by the
	// implementation, so callers may invoke this on every page render.
	FetchLiveMatches(ctx context.Context) (ExternalLiveFeed, error)
	// SearchPlayers looks players up by name fragment on the provider.
	SearchPlayers(ctx context.Context, name string) ([]ExternalPlayer, error)
}

// DisabledFeedProvider stands in for the real feed when it is switched off
// in config. Every call reports the feed as unavailable, so the live page
// keeps serving stored data and player import returns a clear error.
type DisabledFeedProvider struct{}

func (DisabledFeedProvider) FetchLiveMatches(context.Context) (ExternalLiveFeed, error) {
	return ExternalLiveFeed{}, fmt.Errorf("%w: feed disabled", ErrFeedUnavailable)
}

func (DisabledFeedProvider) SearchPlayers(context.Context, string) ([]ExternalPlayer, error) {
	return nil, fmt.Errorf("%w: feed disabled", ErrFeedUnavailable)
}

type ExternalLiveFeed struct {
	Matches     []ExternalLiveMatch
	RawPayloads []rawfeed.Payload
}

type ExternalLiveMatch struct {
	MatchID     int64
	SeriesID    int64
	SeriesName  string
	MatchDesc   string
	MatchFormat string
	Venue       string
	City        string
	Status      string
	Teams       []ExternalTeam
	Innings     []ExternalInnings
}

type ExternalTeam struct {
	TeamID int64
	Name   string
}

type ExternalInnings struct {
	TeamID        int64
	InningsNumber int
	Runs          int
	Wickets       int
	Overs         float64
}

type ExternalPlayer struct {
	PlayerID     int64
	FullName     string
	TeamName     string
	BattingStyle string
	BowlingStyle string
	Country      string
}
