// Package gemini provides a Google Gemini based AI client.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Ngamdu/Meditouch/internal/infrastructure/ai"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var (
	// ErrMissingAPIKey is returned before any provider call when no API key is configured.
	ErrMissingAPIKey = errors.New("GOOGLE_GENAI_API_KEY environment variable is not set")
	// ErrEmptyResponse is returned when the provider answers without any text.
	ErrEmptyResponse = errors.New("gemini returned an empty response")
)

// Config controls Gemini client construction.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ContentGenerator is the subset of genai.Models used by Client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Factory builds the provider handle. It runs at most once per successful Client.
type Factory func(ctx context.Context, cfg Config) (ContentGenerator, error)

var (
	_ ai.Client       = (*Client)(nil)
	_ ai.Configurable = (*Client)(nil)
)

// Client implements ai.Client on top of the genai SDK.
// The SDK client is created on first use and reused afterwards.
type Client struct {
	config  Config
	factory Factory

	mu     sync.Mutex
	models ContentGenerator
}

// NewClient creates a Gemini client.
func NewClient(cfg Config) *Client {
	return NewClientWithFactory(cfg, nil)
}

// NewClientWithFactory creates a client with a custom provider factory for tests.
func NewClientWithFactory(cfg Config, factory Factory) *Client {
	if factory == nil {
		factory = defaultFactory
	}
	return &Client{
		config:  normalizeConfig(cfg),
		factory: factory,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c != nil && c.config.APIKey != ""
}

// Generate sends prompt to Gemini and returns the response text unmodified.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt is empty")
	}

	models, err := c.handle(ctx)
	if err != nil {
		return "", err
	}

	resp, err := models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (c *Client) handle(ctx context.Context) (ContentGenerator, error) {
	if !c.Configured() {
		return nil, ErrMissingAPIKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.models != nil {
		return c.models, nil
	}
	models, err := c.factory(ctx, c.config)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.models = models
	return models, nil
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg
	normalized.APIKey = strings.TrimSpace(normalized.APIKey)
	if strings.TrimSpace(normalized.Model) == "" {
		normalized.Model = defaultModel
	}
	normalized.BaseURL = strings.TrimSpace(normalized.BaseURL)
	return normalized
}

func defaultFactory(ctx context.Context, cfg Config) (ContentGenerator, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}
