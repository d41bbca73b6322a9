package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/prompt-enhancer/internal/config"
	"google.golang.org/api/option"
)

// Request is one content-generation call.
type Request struct {
	// Operation names the call in error messages (OpGeneratePrompt, OpSuggestTask).
	Operation         string
	Tier              ModelTier
	SystemInstruction string
	Prompt            string
	Params            GenerationParams
}

// Client is an abstraction over the generative text endpoint
type Client interface {
	// Generate performs exactly one call and returns the trimmed generated text
	Generate(ctx context.Context, req Request) (string, error)
	// GetModel returns the model name used for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, cfg *Config, apiKey string) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return NewGeminiClient(ctx, cfg, apiKey)
}

// NewClientFromEnv creates a client with the credential from the process environment.
// It returns a *ConfigurationError without touching the network when none is set.
func NewClientFromEnv(ctx context.Context, cfg *Config) (Client, error) {
	return NewClient(ctx, cfg, config.APIKey())
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client. Extra options such as option.WithEndpoint
// are passed through to genai.
func NewGeminiClient(ctx context.Context, cfg *Config, apiKey string, opts ...option.ClientOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{}
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: cfg,
	}, nil
}

// Generate sends the system instruction and prompt with the request's sampling parameters.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return "", &ConfigurationError{Message: fmt.Sprintf("no model configured for tier %s", req.Tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(req.Params.Temperature)
	model.SetTopK(req.Params.TopK)
	model.SetTopP(req.Params.TopP)
	if req.SystemInstruction != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemInstruction))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", classifyError(req.Operation, err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &UnknownError{Operation: req.Operation, Cause: err}
	}

	return strings.TrimSpace(text), nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

var errNoText = errors.New("no text in response")

// extractTextFromResponse joins the text parts of the first candidate
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errNoText
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errNoText
	}

	var sb strings.Builder
	found := false
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			found = true
		}
	}

	if !found {
		return "", errNoText
	}

	return sb.String(), nil
}
