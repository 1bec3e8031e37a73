package skautsapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	BreakerName         = "skauts_api"
	defaultTimeout      = 20 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBytes    = 6 << 20
)

var bearerRegex = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)

var (
	errSkautsTransient = crerr.New("skauts api transient failure")
	errSkautsNotFound  = crerr.New("skauts api resource not found")
)

type ClientConfig struct {
	HTTPClient   *http.Client
	BaseURL      string
	Token        string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	Logger       *logging.Logger

	CircuitBreaker       resilience.CircuitBreakerConfig
	OnCircuitStateChange resilience.StateListener
}

// Client reads console entities from the Skauts REST API. It is safe for
// concurrent use; identical in-flight GETs share one upstream request.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	token        string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.Group[[]byte]
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
		httpClient.Timeout = defaultTimeout
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:        strings.TrimSpace(cfg.Token),
		maxRetries:   maxInt(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger.Named("skautsapi"),
		breaker:      resilience.NewNamedCircuitBreaker(BreakerName, cfg.CircuitBreaker, cfg.OnCircuitStateChange),
	}
}

// getJSON fetches path and decodes the body into target. A 404 is reported as
// errSkautsNotFound so lookups can turn it into "not found".
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	// The shared request must outlive a single caller: a superseded pass
	// cancels its own context but other callers may be waiting on the result.
	flightCtx := context.WithoutCancel(ctx)
	raw, _, err := c.flight.DoContext(ctx, path, func() ([]byte, error) {
		body, reqErr := resilience.Run(c.breaker, func() ([]byte, error) {
			return c.executeRequest(flightCtx, fullURL)
		}, isCircuitFailure)
		if stderrors.Is(reqErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(flightCtx, "skauts api circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: skauts api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return body, reqErr
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if isCircuitFailure(err) {
			return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode skauts api payload path=%s: %w", path, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSkautsTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSkautsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: url=%s", errSkautsNotFound, fullURL)
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: api status=%d body=%s", errSkautsTransient, resp.StatusCode, abbreviateBody(raw, c.token))
			default:
				return nil, fmt.Errorf("api status=%d body=%s", resp.StatusCode, abbreviateBody(raw, c.token))
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
		lastErr = fmt.Errorf("skauts api request failed")
	}
	c.logger.WarnContext(ctx, "skauts api request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

// readBody copies a capped response body out of a pooled buffer.
func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSkautsTransient)
}

func isNotFound(err error) bool {
	return stderrors.Is(err, errSkautsNotFound)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return bearerRegex.ReplaceAllString(value, "Bearer REDACTED")
}

const maxLoggedBodyBytes = 240

func abbreviateBody(body []byte, token string) string {
	text := sanitizeSensitiveText(string(body), token)
	if len(text) <= maxLoggedBodyBytes {
		return text
	}
	cut := maxLoggedBodyBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

func pathf(format string, args ...any) string {
	escaped := make([]any, 0, len(args))
	for _, arg := range args {
		escaped = append(escaped, url.PathEscape(fmt.Sprint(arg)))
	}
	return fmt.Sprintf(format, escaped...)
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
