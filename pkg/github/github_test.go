package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/vouch/pkg/profile"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(context.Background(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithToken("test-token"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.apiBase = srv.URL
	return c
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"login": "octocat", "name": "The Octocat", "company": "@github",
			"location": "San Francisco", "html_url": "https://github.com/octocat",
			"public_repos": 2, "followers": 100, "following": 5
		}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sort"); got != "updated" {
			t.Errorf("sort = %q, want updated", got)
		}
		fmt.Fprint(w, `[
			{"name": "hello-world", "full_name": "octocat/hello-world",
			 "language": "Go", "topics": ["cli", "tooling"],
			 "stargazers_count": 42, "license": {"name": "MIT License"}},
			{"name": "old-stuff", "fork": true, "archived": true}
		]`)
	})
	mux.HandleFunc("/users/octocat/orgs", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"login": "github", "avatar_url": "https://example.com/a.png"}]`)
	})
	mux.HandleFunc("/users/octocat/starred", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"name": "linux", "full_name": "torvalds/linux", "language": "C", "stargazers_count": 150000}]`)
	})

	account, err := testClient(t, mux).Fetch(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if account.User.Name != "The Octocat" {
		t.Errorf("User.Name = %q, want %q", account.User.Name, "The Octocat")
	}
	if account.User.Followers != 100 {
		t.Errorf("User.Followers = %d, want 100", account.User.Followers)
	}

	wantRepos := []Repository{
		{
			Name:     "hello-world",
			FullName: "octocat/hello-world",
			Language: "Go",
			Topics:   []string{"cli", "tooling"},
			Stars:    42,
			License:  "MIT License",
		},
		{Name: "old-stuff", Fork: true, Archived: true},
	}
	if diff := cmp.Diff(wantRepos, account.Repositories); diff != "" {
		t.Errorf("repositories mismatch (-want +got):\n%s", diff)
	}

	if len(account.Organizations) != 1 || account.Organizations[0].Login != "github" {
		t.Errorf("organizations = %+v, want one entry for github", account.Organizations)
	}
	if account.Organizations[0].URL != "https://github.com/github" {
		t.Errorf("org URL = %q", account.Organizations[0].URL)
	}
	if len(account.Starred) != 1 || account.Starred[0].Name != "linux" {
		t.Errorf("starred = %+v, want one entry for linux", account.Starred)
	}
}

func TestFetchUserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})
	_, err := testClient(t, mux).Fetch(context.Background(), "ghost")
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Fatalf("Fetch error = %v, want ErrProfileNotFound", err)
	}
}

type fakeReviewer struct {
	calls int
}

func (f *fakeReviewer) ReviewRepository(_ context.Context, repoName, readme string) (string, error) {
	f.calls++
	return fmt.Sprintf("review of %s (%d bytes)", repoName, len(readme)), nil
}

func TestFetchWithReviewer(t *testing.T) {
	readme := base64.StdEncoding.EncodeToString([]byte("# hello\nA demo repo.\n"))

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"login": "octocat"}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"name": "demo"}, {"name": "empty"}]`)
	})
	mux.HandleFunc("/users/octocat/orgs", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	mux.HandleFunc("/users/octocat/starred", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	mux.HandleFunc("/repos/octocat/demo/readme", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"content": %q, "encoding": "base64"}`, readme)
	})
	mux.HandleFunc("/repos/octocat/empty/readme", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	reviewer := &fakeReviewer{}
	c := testClient(t, mux)
	c.reviewer = reviewer

	account, err := c.Fetch(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if reviewer.calls != 1 {
		t.Errorf("reviewer calls = %d, want 1", reviewer.calls)
	}
	if got := account.Repositories[0].Review; got == "" || got == "No README found." {
		t.Errorf("demo review = %q, want a real review", got)
	}
	if got := account.Repositories[1].Review; got != "No README found." {
		t.Errorf("empty review = %q, want %q", got, "No README found.")
	}
}
