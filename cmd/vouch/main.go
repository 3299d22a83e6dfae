// Command vouch extracts candidate profiles and cross-verifies resumes.
//
// Usage:
//
//	vouch https://www.linkedin.com/in/someone          # extract a LinkedIn profile
//	vouch -github someone                              # fetch a GitHub account
//	vouch -resume cv.pdf                               # verify a resume against GitHub
//	vouch -resume cv.pdf https://linkedin.com/in/someone
//
// LinkedIn extraction needs session cookies, read from browser stores or
// LINKEDIN_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/vouch/pkg/auth"
	"github.com/codeGROOVE-dev/vouch/pkg/browser"
	"github.com/codeGROOVE-dev/vouch/pkg/github"
	"github.com/codeGROOVE-dev/vouch/pkg/httpcache"
	"github.com/codeGROOVE-dev/vouch/pkg/linkedin"
	"github.com/codeGROOVE-dev/vouch/pkg/ollama"
	"github.com/codeGROOVE-dev/vouch/pkg/profile"
	"github.com/codeGROOVE-dev/vouch/pkg/resume"
	"github.com/codeGROOVE-dev/vouch/pkg/verify"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	noBrowser := flag.Bool("no-browser", false, "disable reading cookies from browser stores")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live")
	pause := flag.Duration("pause", 2*time.Second, "settle pause after each page load")
	headful := flag.Bool("headful", false, "run a visible browser window")
	githubUser := flag.String("github", "", "GitHub username to fetch")
	resumePath := flag.String("resume", "", "resume PDF to verify")
	review := flag.Bool("review", false, "review repository READMEs with Ollama")
	summarize := flag.Bool("summarize", false, "summarize the extracted profile with Ollama")
	ollamaURL := flag.String("ollama", "http://localhost:11434", "Ollama server address")
	model := flag.String("model", "llama3.2:3b", "Ollama model name")
	output := flag.String("output", "", "write JSON output to a file instead of stdout")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var cache *httpcache.Cache
	if !*noCache {
		var err error
		cache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := cache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("HTTP cache initialized", "ttl", cacheTTL.String())
		}
	}

	app := &app{
		logger:    logger,
		cache:     cache,
		pause:     *pause,
		headful:   *headful,
		noBrowser: *noBrowser,
		review:    *review,
		summarize: *summarize,
		ollamaURL: *ollamaURL,
		model:     *model,
	}

	ctx := context.Background()
	arg := flag.Arg(0)

	var result any
	var err error
	switch {
	case *resumePath != "":
		result, err = app.verifyResume(ctx, *resumePath, *githubUser, arg)
	case isLinkedInURL(arg):
		result, err = app.scrapeLinkedIn(ctx, arg)
	case *githubUser != "" || arg != "":
		username := *githubUser
		if username == "" {
			username = arg
		}
		result, err = app.fetchGitHub(ctx, username)
	default:
		fmt.Fprintln(os.Stderr, "Usage: vouch [options] <linkedin-url>")
		fmt.Fprintln(os.Stderr, "       vouch [options] -github <username>")
		fmt.Fprintln(os.Stderr, "       vouch [options] -resume <cv.pdf> [linkedin-url]")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	if err := writeJSON(result, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	logger    *slog.Logger
	cache     *httpcache.Cache
	ollamaURL string
	model     string
	pause     time.Duration
	headful   bool
	noBrowser bool
	review    bool
	summarize bool
}

func (a *app) ollamaClient() *ollama.Client {
	return ollama.New(
		ollama.WithLogger(a.logger),
		ollama.WithBaseURL(a.ollamaURL),
		ollama.WithModel(a.model))
}

// linkedInSession builds a browser session with whatever cookies the
// sources can provide.
func (a *app) linkedInSession(ctx context.Context) (*browser.Session, error) {
	sources := []auth.Source{auth.NewEnvSource(a.logger)}
	if !a.noBrowser {
		sources = append(sources, auth.NewBrowserSource(a.logger))
	}
	cookies, err := auth.NewChain(sources...).Cookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cookies: %w", err)
	}
	if len(cookies) == 0 {
		a.logger.Warn("no LinkedIn cookies found - expect the authwall",
			"hint", "log in with a browser or set LINKEDIN_LI_AT")
	}

	opts := []browser.Option{
		browser.WithLogger(a.logger),
		browser.WithCookies(cookies),
		browser.WithPause(a.pause),
	}
	if a.headful {
		opts = append(opts, browser.WithHeadful())
	}
	sess := browser.New(opts...)
	if err := sess.Start(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

type linkedInResult struct {
	Profile *profile.Document `json:"profile"`
	Summary string            `json:"summary,omitempty"`
}

func (a *app) scrapeLinkedIn(ctx context.Context, profileURL string) (any, error) {
	doc, err := a.extractLinkedIn(ctx, profileURL)
	if err != nil {
		return nil, err
	}
	result := &linkedInResult{Profile: doc}

	if a.summarize {
		summary, err := a.ollamaClient().SummarizeProfile(ctx, doc)
		if err != nil {
			a.logger.Warn("profile summary failed", "error", err)
		} else {
			result.Summary = summary
		}
	}
	return result, nil
}

func (a *app) extractLinkedIn(ctx context.Context, profileURL string) (*profile.Document, error) {
	sess, err := a.linkedInSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			a.logger.Warn("failed to close browser", "error", err)
		}
	}()

	page, err := sess.Navigate(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("open profile page: %w", err)
	}
	scraper := linkedin.New(linkedin.WithLogger(a.logger))
	return scraper.Extract(ctx, page, profileURL, sess)
}

func (a *app) fetchGitHub(ctx context.Context, username string) (*github.Account, error) {
	opts := []github.Option{
		github.WithLogger(a.logger),
	}
	if a.cache != nil {
		opts = append(opts, github.WithHTTPCache(a.cache))
	}
	if a.review {
		opts = append(opts, github.WithReviewer(a.ollamaClient()))
	}
	client, err := github.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return client.Fetch(ctx, username)
}

type verifyResult struct {
	Resume *resume.Resume `json:"resume"`
	Report *verify.Report `json:"report"`
}

// verifyResume parses the resume, fetches the GitHub account named on
// the command line or in the resume, optionally extracts the LinkedIn
// profile, and runs the verification engine.
func (a *app) verifyResume(ctx context.Context, path, githubUser, linkedinURL string) (any, error) {
	r, err := resume.Parse(path, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Info("resume parsed", "name", r.Name, "github", r.GitHub, "linkedin", r.LinkedIn)

	username := githubUser
	if username == "" {
		username = r.GitHub
	}
	if username == "" {
		return nil, fmt.Errorf("no GitHub username: pass -github or add a github.com link to the resume")
	}

	account, err := a.fetchGitHub(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetch github account: %w", err)
	}

	engineOpts := []verify.Option{verify.WithLogger(a.logger)}
	if linkedinURL == "" && r.LinkedIn != "" {
		linkedinURL = "https://www.linkedin.com/in/" + r.LinkedIn
	}
	if linkedinURL != "" {
		doc, err := a.extractLinkedIn(ctx, linkedinURL)
		if err != nil {
			// LinkedIn is a bonus signal; verification proceeds on
			// GitHub alone.
			a.logger.Warn("linkedin extraction failed, verifying against GitHub only", "error", err)
		} else {
			engineOpts = append(engineOpts, verify.WithLinkedIn(doc))
		}
	}

	report := verify.New(r, account, engineOpts...).Verify()
	return &verifyResult{Resume: r, Report: report}, nil
}

func isLinkedInURL(s string) bool {
	return strings.Contains(s, "linkedin.com/in/")
}

func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
