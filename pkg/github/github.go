// Package github fetches public account data from the GitHub REST API:
// profile, repositories, organizations, and starred repositories.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codeGROOVE-dev/vouch/pkg/httpcache"
	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

const defaultAPIBase = "https://api.github.com"

// Reviewer produces a short written review of a repository from its
// README. Implemented by the ollama package.
type Reviewer interface {
	ReviewRepository(ctx context.Context, repoName, readme string) (string, error)
}

// Client is a GitHub REST API client.
type Client struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	reviewer   Reviewer
	apiBase    string
	token      string
	maxRepos   int
	maxStarred int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPCache sets the HTTP cache.
func WithHTTPCache(cache httpcache.Cacher) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithToken sets the GitHub API token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithReviewer enables per-repository README reviews.
func WithReviewer(r Reviewer) Option {
	return func(c *Client) { c.reviewer = r }
}

// WithMaxRepos caps how many repositories are fetched. Default 100.
func WithMaxRepos(n int) Option {
	return func(c *Client) { c.maxRepos = n }
}

// New creates a GitHub client. Without a token (option or GITHUB_TOKEN),
// requests run against the anonymous rate limit of 60/hour.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
		apiBase:    defaultAPIBase,
		maxRepos:   100,
		maxStarred: 50,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.token == "" {
		c.token = os.Getenv("GITHUB_TOKEN")
	}
	if c.token == "" {
		c.logger.WarnContext(ctx, "GITHUB_TOKEN not set - GitHub API requests will be rate-limited to 60/hour")
	} else {
		c.logger.DebugContext(ctx, "using token for authenticated API requests")
	}
	return c, nil
}

// Fetch retrieves everything for one GitHub account. The user profile
// gates the rest: an unknown user returns profile.ErrProfileNotFound,
// while failures in repositories, organizations, or stars degrade to
// empty lists.
func (c *Client) Fetch(ctx context.Context, username string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("empty username")
	}
	c.logger.InfoContext(ctx, "fetching github account", "username", username)

	user, err := c.fetchUser(ctx, username)
	if err != nil {
		return nil, err
	}
	account := &Account{User: *user}

	// Independent lists; fetch in parallel.
	var g errgroup.Group
	g.Go(func() error {
		repos, err := c.fetchRepositories(ctx, username)
		if err != nil {
			c.logger.WarnContext(ctx, "fetching repositories failed", "username", username, "error", err)
			return nil
		}
		account.Repositories = repos
		return nil
	})
	g.Go(func() error {
		orgs, err := c.fetchOrganizations(ctx, username)
		if err != nil {
			c.logger.WarnContext(ctx, "fetching organizations failed", "username", username, "error", err)
			return nil
		}
		account.Organizations = orgs
		return nil
	})
	g.Go(func() error {
		starred, err := c.fetchStarred(ctx, username)
		if err != nil {
			c.logger.WarnContext(ctx, "fetching starred repositories failed", "username", username, "error", err)
			return nil
		}
		account.Starred = starred
		return nil
	})
	_ = g.Wait() //nolint:errcheck // goroutines report via the account

	if c.reviewer != nil {
		c.reviewRepositories(ctx, username, account.Repositories)
	}

	c.logger.InfoContext(ctx, "github account fetched",
		"username", username,
		"repos", len(account.Repositories),
		"orgs", len(account.Organizations),
		"starred", len(account.Starred))
	return account, nil
}

func (c *Client) fetchUser(ctx context.Context, username string) (*User, error) {
	data, err := c.api(ctx, "/users/"+username, nil)
	if err != nil {
		return nil, err
	}
	var u apiUser
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", username, err)
	}
	return &User{
		Username:    u.Login,
		Name:        u.Name,
		Bio:         u.Bio,
		Company:     u.Company,
		Location:    u.Location,
		Email:       u.Email,
		Blog:        u.Blog,
		Twitter:     u.Twitter,
		AvatarURL:   u.AvatarURL,
		ProfileURL:  u.HTMLURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Hireable:    u.Hireable,
		PublicRepos: u.PublicRepos,
		PublicGists: u.PublicGists,
		Followers:   u.Followers,
		Following:   u.Following,
	}, nil
}

func (c *Client) fetchRepositories(ctx context.Context, username string) ([]Repository, error) {
	const perPage = 100
	var repos []Repository
	for page := 1; len(repos) < c.maxRepos; page++ {
		params := url.Values{
			"per_page":  {strconv.Itoa(perPage)},
			"page":      {strconv.Itoa(page)},
			"sort":      {"updated"},
			"direction": {"desc"},
		}
		data, err := c.api(ctx, "/users/"+username+"/repos", params)
		if err != nil {
			return repos, err
		}
		var batch []apiRepo
		if err := json.Unmarshal(data, &batch); err != nil {
			return repos, fmt.Errorf("decode repositories page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}
		for i := range batch {
			if len(repos) >= c.maxRepos {
				break
			}
			repos = append(repos, repoFromAPI(&batch[i]))
		}
		if len(batch) < perPage {
			break
		}
	}
	return repos, nil
}

func repoFromAPI(r *apiRepo) Repository {
	repo := Repository{
		Name:          r.Name,
		FullName:      r.FullName,
		Description:   r.Description,
		URL:           r.HTMLURL,
		Homepage:      r.Homepage,
		Language:      r.Language,
		Topics:        r.Topics,
		DefaultBranch: r.DefaultBranch,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		PushedAt:      r.PushedAt,
		Stars:         r.Stars,
		Forks:         r.Forks,
		Watchers:      r.Watchers,
		OpenIssues:    r.OpenIssues,
		Size:          r.Size,
		Fork:          r.Fork,
		Archived:      r.Archived,
	}
	if r.License != nil {
		repo.License = r.License.Name
	}
	return repo
}

func (c *Client) fetchOrganizations(ctx context.Context, username string) ([]Organization, error) {
	data, err := c.api(ctx, "/users/"+username+"/orgs", nil)
	if err != nil {
		return nil, err
	}
	var batch []apiOrg
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("decode organizations: %w", err)
	}
	orgs := make([]Organization, 0, len(batch))
	for _, o := range batch {
		u := o.HTMLURL
		if u == "" {
			u = "https://github.com/" + o.Login
		}
		orgs = append(orgs, Organization{
			Login:       o.Login,
			URL:         u,
			AvatarURL:   o.AvatarURL,
			Description: o.Description,
		})
	}
	return orgs, nil
}

func (c *Client) fetchStarred(ctx context.Context, username string) ([]StarredRepo, error) {
	const perPage = 50
	var starred []StarredRepo
	for page := 1; len(starred) < c.maxStarred; page++ {
		params := url.Values{
			"per_page": {strconv.Itoa(perPage)},
			"page":     {strconv.Itoa(page)},
		}
		data, err := c.api(ctx, "/users/"+username+"/starred", params)
		if err != nil {
			return starred, err
		}
		var batch []apiRepo
		if err := json.Unmarshal(data, &batch); err != nil {
			return starred, fmt.Errorf("decode starred page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}
		for _, r := range batch {
			if len(starred) >= c.maxStarred {
				break
			}
			starred = append(starred, StarredRepo{
				Name:        r.Name,
				FullName:    r.FullName,
				Description: r.Description,
				URL:         r.HTMLURL,
				Language:    r.Language,
				Stars:       r.Stars,
			})
		}
		if len(batch) < perPage {
			break
		}
	}
	return starred, nil
}

// reviewRepositories attaches an LLM review of each repository's README.
// A repository without a README gets a fixed note; a failed review costs
// only that repository.
func (c *Client) reviewRepositories(ctx context.Context, username string, repos []Repository) {
	for i := range repos {
		readme, err := c.fetchReadme(ctx, username, repos[i].Name)
		if err != nil || readme == "" {
			repos[i].Review = "No README found."
			continue
		}
		c.logger.InfoContext(ctx, "reviewing repository", "repo", repos[i].Name)
		review, err := c.reviewer.ReviewRepository(ctx, repos[i].Name, readme)
		if err != nil {
			c.logger.WarnContext(ctx, "repository review failed", "repo", repos[i].Name, "error", err)
			repos[i].Review = "Analysis failed."
			continue
		}
		repos[i].Review = review
	}
}

func (c *Client) fetchReadme(ctx context.Context, username, repo string) (string, error) {
	data, err := c.api(ctx, "/repos/"+username+"/"+repo+"/readme", nil)
	if err != nil {
		return "", err
	}
	var readme apiReadme
	if err := json.Unmarshal(data, &readme); err != nil {
		return "", fmt.Errorf("decode readme: %w", err)
	}
	// The API wraps base64 content with embedded newlines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(readme.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode readme content: %w", err)
	}
	return string(decoded), nil
}

// api performs one GET against the REST API through the shared cache and
// maps HTTP failures to the package error taxonomy.
func (c *Client) api(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.apiBase + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", httpcache.UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	data, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		var httpErr *httpcache.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusNotFound:
				return nil, fmt.Errorf("%s: %w", path, profile.ErrProfileNotFound)
			case http.StatusForbidden, http.StatusTooManyRequests:
				return nil, fmt.Errorf("%s: %w", path, profile.ErrRateLimited)
			}
		}
		return nil, err
	}
	return data, nil
}
