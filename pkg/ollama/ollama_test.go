package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer(t *testing.T, handler func(req map[string]any) string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": handler(req)}) //nolint:errcheck // test
	}))
	t.Cleanup(srv.Close)
	return New(WithBaseURL(srv.URL), WithModel("test-model"))
}

func TestGenerate(t *testing.T) {
	c := testServer(t, func(req map[string]any) string {
		if req["model"] != "test-model" {
			t.Errorf("model = %v, want test-model", req["model"])
		}
		if req["stream"] != false {
			t.Errorf("stream = %v, want false", req["stream"])
		}
		return "hello back"
	})
	got, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hello back" {
		t.Errorf("Generate = %q, want %q", got, "hello back")
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	if _, err := New(WithBaseURL(srv.URL)).Generate(context.Background(), "hi"); err == nil {
		t.Fatal("Generate returned no error for HTTP 404")
	}
}

func TestReviewRepositoryTruncatesReadme(t *testing.T) {
	var prompt string
	c := testServer(t, func(req map[string]any) string {
		prompt, _ = req["prompt"].(string)
		return "fine project"
	})

	longReadme := strings.Repeat("x", readmeLimit+500)
	if _, err := c.ReviewRepository(context.Background(), "demo", longReadme); err != nil {
		t.Fatalf("ReviewRepository: %v", err)
	}
	if !strings.Contains(prompt, "...(truncated)") {
		t.Error("long README was not truncated")
	}
	if !strings.Contains(prompt, "'demo'") {
		t.Error("prompt does not name the repository")
	}
}

func TestSummarizeProfile(t *testing.T) {
	var prompt string
	c := testServer(t, func(req map[string]any) string {
		prompt, _ = req["prompt"].(string)
		return "strong candidate"
	})
	got, err := c.SummarizeProfile(context.Background(), map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("SummarizeProfile: %v", err)
	}
	if got != "strong candidate" {
		t.Errorf("SummarizeProfile = %q", got)
	}
	if !strings.Contains(prompt, `"name": "Ada"`) {
		t.Errorf("prompt missing profile JSON: %q", prompt)
	}
}
