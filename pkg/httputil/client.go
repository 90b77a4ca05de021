package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gitcanvas/gitcanvas/pkg/observability"
)

const httpTimeout = 10 * time.Second

// ErrNetwork marks transport failures: timeouts, refused connections,
// unreadable bodies.
var ErrNetwork = errors.New("network error")

// StatusError reports a non-200 response.
type StatusError struct {
	Status int
	URL    string

	// RetryAfter is how long the server asked us to wait, from
	// Retry-After or X-RateLimit-Reset. Zero when not given.
	RetryAfter time.Duration

	// Exhausted is set when X-RateLimit-Remaining was 0.
	Exhausted bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Status, e.URL)
}

// Client performs JSON GET requests with shared headers, caching and retry.
// It is safe for concurrent use.
type Client struct {
	http    *http.Client
	cache   *JSONCache
	headers map[string]string

	// Policy governs retries in Cached.
	Policy Policy
}

// NewClient creates a Client with the given cache and default headers.
// Headers are applied to all requests made through this client.
// A nil cache disables caching.
func NewClient(cache *JSONCache, headers map[string]string) *Client {
	if cache == nil {
		cache = NewJSONCache(nil, 0)
	}
	return &Client{
		http:    NewHTTPClient(),
		cache:   cache,
		headers: headers,
		Policy:  DefaultPolicy,
	}
}

// NewHTTPClient creates an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
// The fetch function should populate v; on success, v is stored in the cache.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if !refresh {
		if ok, _ := c.cache.Get(ctx, key, v); ok {
			return nil
		}
	}
	if err := c.Policy.Do(ctx, fetch); err != nil {
		return err
	}
	_ = c.cache.Set(ctx, key, v)
	return nil
}

// Get performs a GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	_, err := c.GetPage(ctx, rawURL, v)
	return err
}

// GetPage is like Get and also returns the rel="next" URL from the Link
// header, or "" on the last page.
func (c *Client) GetPage(ctx context.Context, rawURL string, v any) (next string, err error) {
	resp, err := c.do(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return "", Retryable(fmt.Errorf("%w: decode %s: %v", ErrNetwork, rawURL, err))
	}
	return NextLink(resp.Header.Get("Link")), nil
}

func (c *Client) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp, rawURL); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func checkStatus(resp *http.Response, rawURL string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	se := &StatusError{
		Status:     resp.StatusCode,
		URL:        rawURL,
		RetryAfter: retryAfter(resp.Header, time.Now()),
		Exhausted:  resp.Header.Get("X-RateLimit-Remaining") == "0",
	}
	if resp.StatusCode >= 500 {
		return Retryable(se)
	}
	return se
}

func retryAfter(h http.Header, now time.Time) time.Duration {
	if s, err := strconv.Atoi(h.Get("Retry-After")); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}
	if reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		if d := time.Unix(reset, 0).Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

// NextLink extracts the rel="next" target from an RFC 8288 Link header.
func NextLink(header string) string {
	for _, link := range strings.Split(header, ",") {
		target, params, ok := strings.Cut(link, ";")
		if !ok || !strings.Contains(params, `rel="next"`) {
			continue
		}
		return strings.Trim(strings.TrimSpace(target), "<>")
	}
	return ""
}
