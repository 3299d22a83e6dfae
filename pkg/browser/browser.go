// Package browser drives a Chrome session via Rod to fetch rendered
// LinkedIn pages. LinkedIn assembles profiles client-side, so plain HTTP
// fetches return an empty shell; a real browser is the only way to get
// the populated DOM.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

const navigateTimeout = 30 * time.Second

// Session is a Chrome session that renders pages and hands back parsed
// documents. It satisfies the Navigator collaborator of the linkedin
// package. Sessions are not safe for concurrent use.
type Session struct {
	logger  *slog.Logger
	cookies map[string]string
	browser *rod.Browser
	lnch    *launcher.Launcher
	pause   time.Duration
	headful bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithCookies sets session cookies to apply to the browser, typically
// from pkg/auth.
func WithCookies(cookies map[string]string) Option {
	return func(s *Session) {
		s.cookies = cookies
	}
}

// WithPause sets the settle pause after each page load. Rendered pages
// keep filling in after the load event, and back-to-back navigations
// trip bot detection. Default 2s.
func WithPause(pause time.Duration) Option {
	return func(s *Session) {
		s.pause = pause
	}
}

// WithHeadful runs a visible browser window instead of headless Chrome.
func WithHeadful() Option {
	return func(s *Session) {
		s.headful = true
	}
}

// New creates a Session. Call Start before navigating.
func New(opts ...Option) *Session {
	s := &Session{
		logger: slog.Default(),
		pause:  2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches Chrome and applies the session cookies.
func (s *Session) Start(ctx context.Context) error {
	l := launcher.New().
		Headless(!s.headful).
		Set("disable-blink-features", "AutomationControlled")

	wsURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}
	s.lnch = l

	b := rod.New().ControlURL(wsURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}
	s.browser = b
	s.logger.DebugContext(ctx, "browser started", "headful", s.headful)

	if len(s.cookies) > 0 {
		if err := s.applyCookies(); err != nil {
			return fmt.Errorf("apply cookies: %w", err)
		}
		s.logger.DebugContext(ctx, "session cookies applied", "count", len(s.cookies))
	}
	return nil
}

func (s *Session) applyCookies() error {
	params := make([]*proto.NetworkCookieParam, 0, len(s.cookies))
	for name, value := range s.cookies {
		params = append(params, &proto.NetworkCookieParam{
			Name:   name,
			Value:  value,
			Domain: ".linkedin.com",
			Path:   "/",
			Secure: true,
		})
	}
	return s.browser.SetCookies(params)
}

// Navigate opens the URL in a fresh stealth tab, waits for the page to
// load and settle, and returns the rendered DOM as a parsed document.
func (s *Session) Navigate(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if s.browser == nil {
		return nil, fmt.Errorf("browser not started")
	}

	page, err := stealth.Page(s.browser)
	if err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}
	defer page.Close() //nolint:errcheck // best effort

	navCtx, cancel := context.WithTimeout(ctx, navigateTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		s.logger.WarnContext(ctx, "wait load timeout", "url", pageURL, "error", err)
	}

	// Let lazy content render before serializing.
	select {
	case <-time.After(s.pause):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	res, err := page.Context(navCtx).Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return nil, fmt.Errorf("serialize DOM for %s: %w", pageURL, err)
	}
	html := res.Value.Str()
	s.logger.DebugContext(ctx, "page rendered", "url", pageURL, "bytes", len(html))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse DOM for %s: %w", pageURL, err)
	}
	return doc, nil
}

// Close shuts down the browser and cleans up the launcher's temp data.
func (s *Session) Close() error {
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.lnch != nil {
		s.lnch.Cleanup()
	}
	return err
}
