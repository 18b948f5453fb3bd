package cricbuzz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/cricstats/cricket-dashboard/internal/domain/rawfeed"
	"github.com/cricstats/cricket-dashboard/internal/platform/cache"
	"github.com/cricstats/cricket-dashboard/internal/platform/logging"
	"github.com/cricstats/cricket-dashboard/internal/platform/resilience"
	"github.com/cricstats/cricket-dashboard/internal/usecase"
)

const (
	defaultBaseURL  = "https://cricbuzz-cricket.p.rapidapi.com"
	defaultAPIHost  = "cricbuzz-cricket.p.rapidapi.com"
	defaultCacheTTL = 60 * time.Second

	liveMatchesPath  = "/matches/v1/live"
	playerSearchPath = "/stats/v1/player/search"

	liveFeedMemoKey = "live"
	feedSource      = "cricbuzz"
)

var errCricbuzzTransient = crerr.New("cricbuzz transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	APIHost        string
	Timeout        time.Duration
	MaxRetries     int
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Cricbuzz API on RapidAPI. Live feed responses are
// memoized for CacheTTL so repeated page renders inside the window do not hit
// the provider again.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	apiHost        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	memo           *cache.Store
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiHost := strings.TrimSpace(cfg.APIHost)
	if apiHost == "" {
		apiHost = defaultAPIHost
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		apiHost:        apiHost,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		memo:           cache.NewStore(cacheTTL),
	}
}

// FetchLiveMatches returns the flattened live feed. The whole fetch+flatten
// is memoized under one key, so concurrent renders share a single provider
// round trip.
func (c *Client) FetchLiveMatches(ctx context.Context) (usecase.ExternalLiveFeed, error) {
	out, err := c.memo.GetOrLoad(ctx, liveFeedMemoKey, func(ctx context.Context) (any, error) {
		var envelope liveFeedEnvelope
		raw, err := c.doJSON(ctx, liveMatchesPath, nil, &envelope)
		if err != nil {
			return nil, fmt.Errorf("fetch live matches: %w", err)
		}

		feed := usecase.ExternalLiveFeed{
			Matches:     flattenLiveFeed(envelope),
			RawPayloads: []rawfeed.Payload{buildFeedPayload(liveMatchesPath, raw)},
		}
		return feed, nil
	})
	if err != nil {
		return usecase.ExternalLiveFeed{}, err
	}

	feed, ok := out.(usecase.ExternalLiveFeed)
	if !ok {
		return usecase.ExternalLiveFeed{}, fmt.Errorf("unexpected memo payload type %T", out)
	}
	return feed, nil
}

// SearchPlayers queries the provider's player search. Results are not
// memoized: the operator drives these interactively and expects fresh data.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]usecase.ExternalPlayer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", usecase.ErrInvalidInput)
	}

	var envelope playerSearchEnvelope
	if _, err := c.doJSON(ctx, playerSearchPath, map[string]string{"plrN": name}, &envelope); err != nil {
		return nil, fmt.Errorf("search players name=%q: %w", name, err)
	}
	return parsePlayerSearch(envelope), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cricbuzz circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: score feed is temporarily unavailable", usecase.ErrFeedUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errCricbuzzTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode feed payload: %w", err)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-rapidapi-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", c.apiHost)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errCricbuzzTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errCricbuzzTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errCricbuzzTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "cricbuzz request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func buildFeedPayload(path string, raw []byte) rawfeed.Payload {
	sum := sha256.Sum256(raw)
	return rawfeed.Payload{
		Source:      feedSource,
		EntityKey:   path,
		PayloadHash: hex.EncodeToString(sum[:]),
		PayloadJSON: string(raw),
		FetchedAt:   time.Now().UTC(),
	}
}

func sanitizeSensitiveText(value, secret string) string {
	value = strings.TrimSpace(value)
	if value == "" || secret == "" {
		return value
	}
	return strings.ReplaceAll(value, secret, "REDACTED")
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
