// Package httpcache provides cached, rate-limited HTTP fetching with
// thundering herd prevention.
package httpcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/localfs"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/null"
)

// UserAgent is the browser User-Agent string used for all direct HTTP requests.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:146.0) Gecko/20100101 Firefox/146.0"

// Cacher allows external cache implementations for sharing across packages.
type Cacher interface {
	GetSet(ctx context.Context, key string, fetch func(context.Context) ([]byte, error), ttl ...time.Duration) ([]byte, error)
	TTL() time.Duration
}

// Cache wraps sfcache for HTTP response caching.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// New creates a Cache with disk persistence at ~/.cache/vouch.
func New(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewWithPath(ttl, filepath.Join(cacheDir, "vouch"))
}

// NewNull creates a Cache with no persistence: every get misses and
// every set is discarded.
func NewNull() *Cache {
	tc, err := sfcache.NewTiered[string, []byte](null.New[string, []byte]())
	if err != nil {
		panic("sfcache.NewTiered with null store: " + err.Error())
	}
	return &Cache{TieredCache: tc, ttl: 0}
}

// NewWithPath creates a Cache with disk persistence at the given path.
func NewWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("vouch", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// URLToKey converts a URL to a cache key using a SHA256 hash.
func URLToKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(hash[:])
}

// HTTPError represents a non-200 HTTP response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// ResponseValidator validates a response body. Returns true if cacheable.
type ResponseValidator func(body []byte) bool

// FetchURL fetches a URL through the cache. Concurrent callers for the
// same key share one request.
func FetchURL(ctx context.Context, cache Cacher, client *http.Client, req *http.Request, logger *slog.Logger) ([]byte, error) {
	return FetchURLWithValidator(ctx, cache, client, req, logger, nil)
}

// FetchURLWithValidator fetches a URL through the cache with optional
// response validation. When the validator rejects a body, the body is
// still returned but not cached.
func FetchURLWithValidator(
	ctx context.Context,
	cache Cacher,
	client *http.Client,
	req *http.Request,
	logger *slog.Logger,
	validator ResponseValidator,
) ([]byte, error) {
	// Authenticated and anonymous responses differ; keep them apart.
	cacheKey := req.URL.String()
	if client.Jar != nil && len(client.Jar.Cookies(req.URL)) > 0 {
		cacheKey += "|auth"
	}

	if cache == nil {
		if logger != nil {
			logger.Debug("cache disabled", "url", req.URL.String())
		}
		return doFetch(ctx, client, req, logger)
	}

	var wasFetched bool
	data, err := cache.GetSet(ctx, URLToKey(cacheKey), func(ctx context.Context) ([]byte, error) {
		wasFetched = true
		if logger != nil {
			logger.Info("cache miss", "url", req.URL.String())
		}
		body, fetchErr := doFetch(ctx, client, req, logger)
		if fetchErr != nil {
			// Cache errors too, so a broken URL is not hammered on
			// every run within the TTL.
			var httpErr *HTTPError
			if errors.As(fetchErr, &httpErr) {
				return fmt.Appendf(nil, "ERROR:%d", httpErr.StatusCode), nil
			}
			return fmt.Appendf(nil, "NETERR:%s", fetchErr.Error()), nil
		}
		if validator != nil && !validator(body) {
			if logger != nil {
				logger.Debug("skipping cache due to validation failure", "key", cacheKey)
			}
			return nil, &validationError{data: body}
		}
		return body, nil
	}, cache.TTL())

	if !wasFetched && logger != nil {
		logger.Debug("cache hit", "url", req.URL.String())
	}

	var validErr *validationError
	if errors.As(err, &validErr) {
		return validErr.data, nil
	}
	if err != nil {
		return nil, err
	}

	// Unpack cached errors.
	s := string(data)
	if errCode, found := strings.CutPrefix(s, "ERROR:"); found {
		code, _ := strconv.Atoi(errCode) //nolint:errcheck // 0 is acceptable default
		return nil, &HTTPError{StatusCode: code, URL: req.URL.String()}
	}
	if errMsg, found := strings.CutPrefix(s, "NETERR:"); found {
		return nil, fmt.Errorf("cached network error: %s", errMsg)
	}

	return data, nil
}

type validationError struct{ data []byte }

func (*validationError) Error() string { return "validation failed" }

func doFetch(ctx context.Context, client *http.Client, req *http.Request, logger *slog.Logger) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			limiter.Wait(req.URL.String(), logger)

			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if resp.StatusCode != http.StatusOK {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
			}

			return io.ReadAll(resp.Body)
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.MaxJitter(100*time.Millisecond),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			if logger != nil {
				logger.Debug("retrying HTTP request", "attempt", n+1, "url", req.URL.String(), "error", err)
			}
		}),
	)
}

// isRetryableError returns true for transient errors worth a retry.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false // other 4xx are permanent
		}
	}
	// Network errors and timeouts are retryable.
	return true
}

// limiter spaces out direct requests per host.
var limiter = &hostRateLimiter{minDelay: 1100 * time.Millisecond}

type hostRateLimiter struct {
	lastRequest sync.Map
	mu          sync.Map
	minDelay    time.Duration
}

func (r *hostRateLimiter) Wait(rawURL string, logger *slog.Logger) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return
	}
	host := u.Host

	muI, _ := r.mu.LoadOrStore(host, &sync.Mutex{})
	mu, ok := muI.(*sync.Mutex)
	if !ok {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if lastI, ok := r.lastRequest.Load(host); ok {
		if last, ok := lastI.(time.Time); ok {
			if elapsed := time.Since(last); elapsed < r.minDelay {
				wait := r.minDelay - elapsed
				if logger != nil {
					logger.Debug("rate limit pause", "host", host, "wait", wait)
				}
				time.Sleep(wait)
			}
		}
	}

	r.lastRequest.Store(host, time.Now())
}
