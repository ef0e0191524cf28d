package boxscoreapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
	"github.com/riskibarqy/boxscore/internal/platform/resilience"
	"github.com/riskibarqy/boxscore/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 6 << 20
)

var (
	errBoxscoreTransient = crerr.New("boxscore api transient failure")
	// errFlightAbandoned marks a shared request that stopped because the
	// caller running it went away; callers still waiting retry on their own.
	errFlightAbandoned = crerr.New("boxscore api shared request abandoned")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the box-score REST API and returns decoded bodies as
// generic JSON values.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	flight         resilience.SingleFlight
}

var _ usecase.DataSource = (*Client)(nil)

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
		httpClient.Timeout = defaultTimeout
	}

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}
	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("boxscore api circuit breaker state changed", "from", from, "to", to)
		}
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   retryBackoff,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
	}
}

func (c *Client) ListPlayers(ctx context.Context) (any, error) {
	return c.doJSON(ctx, "/players", nil)
}

func (c *Client) GetPlayerDetails(ctx context.Context, nameKey string) (any, error) {
	return c.doJSON(ctx, "/playerdetails/"+url.PathEscape(nameKey), nil)
}

func (c *Client) GetLatestGame(ctx context.Context, playerID string) (any, error) {
	return c.doJSON(ctx, "/player/"+url.PathEscape(playerID)+"/latestgame", nil)
}

// GetGames sends only the filters that carry a value.
func (c *Client) GetGames(ctx context.Context, playerID string, filters usecase.GameFilters) (any, error) {
	filters = filters.Normalize()
	query := url.Values{}
	if filters.GameType != "" {
		query.Set("gameType", filters.GameType)
	}
	if filters.Season != "" {
		query.Set("season", filters.Season)
	}
	if filters.Opponent != "" {
		query.Set("opponent", filters.Opponent)
	}
	return c.doJSON(ctx, "/player/"+url.PathEscape(playerID)+"/games", query)
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values) (any, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	for {
		out, err, shared := c.flight.Do(ctx, fullURL, func() (any, error) {
			return c.guardedRequest(ctx, fullURL)
		})
		if shared && crerr.Is(err, errFlightAbandoned) && ctx.Err() == nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// guardedRequest runs one upstream request under the circuit breaker. It is
// only ever called by the single-flight leader, so each breaker slot is
// reserved and settled exactly once.
func (c *Client) guardedRequest(ctx context.Context, fullURL string) (any, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "boxscore api circuit breaker rejected request", "state", c.breaker.State())
		return nil, fmt.Errorf("%w: box score provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	body, err := c.executeRequest(ctx, fullURL)
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
	case ctx.Err() != nil:
		c.breaker.Release()
		return nil, crerr.Mark(err, errFlightAbandoned)
	case isCircuitFailure(err):
		c.breaker.RecordFailure()
	default:
		c.breaker.RecordSuccess()
	}
	return body, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) (any, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = crerr.Mark(fmt.Errorf("%w: send request: %v", usecase.ErrDependencyUnavailable, err), errBoxscoreTransient)
		} else {
			body, status, readErr := readBody(resp)
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(fmt.Errorf("%w: read response body: %v", usecase.ErrDependencyUnavailable, readErr), errBoxscoreTransient)
			case status >= 200 && status < 300:
				var decoded any
				if err := sonic.ConfigStd.Unmarshal(body, &decoded); err != nil {
					return nil, fmt.Errorf("%w: decode provider payload: %v", usecase.ErrDependencyUnavailable, err)
				}
				return decoded, nil
			case status == http.StatusNotFound:
				return nil, fmt.Errorf("%w: provider status=%d", usecase.ErrNotFound, status)
			case isRetryableStatus(status):
				lastErr = crerr.Mark(fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrDependencyUnavailable, status, abbreviateBody(body)), errBoxscoreTransient)
			default:
				return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrDependencyUnavailable, status, abbreviateBody(body))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: provider request failed", usecase.ErrDependencyUnavailable)
	}
	c.logger.WarnContext(ctx, "boxscore api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// readBody drains the response through a pooled buffer and returns a copy
// owned by the caller.
func readBody(resp *http.Response) ([]byte, int, error) {
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseSize)); err != nil {
		return nil, resp.StatusCode, err
	}
	return append([]byte(nil), buf.B...), resp.StatusCode, nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errBoxscoreTransient)
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
