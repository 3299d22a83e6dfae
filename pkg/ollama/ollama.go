// Package ollama is a minimal client for a local Ollama server, used to
// summarize extracted profiles and review repository READMEs.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2:3b"

	// readmeLimit caps README text handed to the model so one giant
	// README does not eat the whole context window.
	readmeLimit = 10000
)

// Client talks to one Ollama server.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	model      string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithBaseURL sets the server address. Default http://localhost:11434.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithModel sets the model name. Default llama3.2:3b.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates an Ollama client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		logger:     slog.Default(),
		baseURL:    defaultBaseURL,
		model:      defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate runs one non-streaming completion.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "ollama generate", "model", c.model, "prompt_bytes", len(prompt))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best effort

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned HTTP %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out.Response, nil
}

// SummarizeProfile asks the model for a short summary of extracted
// profile data, passed as JSON.
func (c *Client) SummarizeProfile(ctx context.Context, profileData any) (string, error) {
	data, err := json.MarshalIndent(profileData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	prompt := fmt.Sprintf(
		"Analyze the following profile data and provide a brief summary of the candidate's key skills and experience level.\n\nProfile Data:\n%s",
		data)
	return c.Generate(ctx, prompt)
}

// ReviewRepository asks the model for a concise review of a repository
// based on its README. Satisfies the github package's Reviewer interface.
func (c *Client) ReviewRepository(ctx context.Context, repoName, readme string) (string, error) {
	if len(readme) > readmeLimit {
		readme = readme[:readmeLimit] + "...(truncated)"
	}
	prompt := fmt.Sprintf(
		"Analyze the following README for the GitHub repository '%s' and provide a concise review of what the project does, its key features, and the tech stack used.\n\nREADME:\n%s",
		repoName, readme)
	return c.Generate(ctx, prompt)
}
