// Package auth loads LinkedIn session cookies from static values,
// environment variables, or local browser cookie stores.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
)

// Domain is the cookie domain all sources read for.
const Domain = "linkedin.com"

// essentialCookies are the cookies a LinkedIn session needs to render
// profile pages instead of the authwall.
var essentialCookies = []string{"li_at", "JSESSIONID", "lidc", "bcookie"}

// envNames maps cookie names to the environment variables that may
// carry them.
var envNames = map[string]string{
	"li_at":      "LINKEDIN_LI_AT",
	"JSESSIONID": "LINKEDIN_JSESSIONID",
	"lidc":       "LINKEDIN_LIDC",
	"bcookie":    "LINKEDIN_BCOOKIE",
}

// Source provides session cookies as a name to value map. An empty map
// with a nil error means the source has nothing, which is not a failure.
type Source interface {
	Cookies(ctx context.Context) (map[string]string, error)
}

// StaticSource returns a fixed cookie map.
type StaticSource struct {
	cookies map[string]string
}

// NewStaticSource creates a source from explicit cookie values.
func NewStaticSource(cookies map[string]string) *StaticSource {
	return &StaticSource{cookies: cookies}
}

// Cookies returns the configured cookies.
func (s *StaticSource) Cookies(_ context.Context) (map[string]string, error) {
	return s.cookies, nil
}

// EnvSource reads cookies from LINKEDIN_* environment variables.
type EnvSource struct {
	logger *slog.Logger
}

// NewEnvSource creates an environment-variable cookie source.
func NewEnvSource(logger *slog.Logger) *EnvSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnvSource{logger: logger}
}

// Cookies returns whatever LINKEDIN_* variables are set. The session
// cookie alone is enough to be useful, so partial sets are returned as-is.
func (s *EnvSource) Cookies(ctx context.Context) (map[string]string, error) {
	cookies := make(map[string]string)
	for name, env := range envNames {
		if v := os.Getenv(env); v != "" {
			cookies[name] = v
		}
	}
	if len(cookies) > 0 {
		s.logger.DebugContext(ctx, "cookies from environment", "count", len(cookies))
	}
	return cookies, nil
}

// Chain tries each source in order and returns the first non-empty
// cookie set.
type Chain struct {
	sources []Source
}

// NewChain creates a first-wins chain of cookie sources.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Cookies returns the first non-empty cookie set among the sources.
func (c *Chain) Cookies(ctx context.Context) (map[string]string, error) {
	for _, src := range c.sources {
		cookies, err := src.Cookies(ctx)
		if err != nil {
			return nil, err
		}
		if len(cookies) > 0 {
			return cookies, nil
		}
	}
	return nil, nil
}

// NewCookieJar builds an http.CookieJar carrying the given cookies for
// the LinkedIn domain.
func NewCookieJar(cookies map[string]string) (http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	u := &url.URL{Scheme: "https", Host: "www." + Domain}
	var list []*http.Cookie
	for name, value := range cookies {
		list = append(list, &http.Cookie{
			Name:   name,
			Value:  value,
			Domain: "." + Domain,
			Path:   "/",
		})
	}
	jar.SetCookies(u, list)
	return jar, nil
}
