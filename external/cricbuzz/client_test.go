package cricbuzz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
	"github.com/cricstats/cricket-dashboard/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
	return client, server
}

func TestFetchLiveMatchesMemoizesWithinTTL(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != liveMatchesPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleLiveFeed))
	}))

	ctx := context.Background()
	first, err := client.FetchLiveMatches(ctx)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := client.FetchLiveMatches(ctx)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single upstream call within the memo window, got=%d", got)
	}
	if len(first.Matches) != 1 || len(second.Matches) != 1 {
		t.Fatalf("unexpected match counts: first=%d second=%d", len(first.Matches), len(second.Matches))
	}
	if len(first.RawPayloads) != 1 || first.RawPayloads[0].PayloadHash == "" {
		t.Fatalf("expected one hashed raw payload, got=%+v", first.RawPayloads)
	}
}

func TestFetchLiveMatchesErrorNotMemoized(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "bad key", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(sampleLiveFeed))
	}))

	ctx := context.Background()
	if _, err := client.FetchLiveMatches(ctx); err == nil {
		t.Fatal("expected error on first fetch")
	}
	feed, err := client.FetchLiveMatches(ctx)
	if err != nil {
		t.Fatalf("second fetch should retry upstream: %v", err)
	}
	if len(feed.Matches) != 1 {
		t.Fatalf("expected one match, got=%d", len(feed.Matches))
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got=%d", got)
	}
}

func TestFetchLiveMatchesSingleAttemptByDefault(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))

	if _, err := client.FetchLiveMatches(context.Background()); err == nil {
		t.Fatal("expected error from failing upstream")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one upstream attempt, got=%d", got)
	}
}

func TestSearchPlayers(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != playerSearchPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("plrN"); got != "kohli" {
			t.Errorf("expected plrN=kohli, got %q", got)
		}
		_, _ = w.Write([]byte(`{"player":[{"id":"1413","name":"Virat Kohli","teamName":"India"}]}`))
	}))

	players, err := client.SearchPlayers(context.Background(), "kohli")
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	if len(players) != 1 || players[0].PlayerID != 1413 {
		t.Fatalf("unexpected players: %+v", players)
	}
}

func TestSearchPlayersRequiresName(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})
	if _, err := client.SearchPlayers(context.Background(), "  "); err == nil {
		t.Fatal("expected invalid input error")
	}
}
