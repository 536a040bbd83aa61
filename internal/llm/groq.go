package llm

import (
	"context"
	"errors"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"health-companion/pkg"
)

// ErrMissingAPIKey is returned when no completion API key is configured.
// The check happens before any network call so a misconfigured deployment
// never hits the provider.
var ErrMissingAPIKey = errors.New("llm: missing API key")

// Client is the completion invoker used by the router. Implementations send
// one blocking request and return the model's raw text output unmodified.
type Client interface {
	Complete(ctx context.Context, req pkg.CompletionRequest) (string, error)
}

// GroqClient calls Groq's OpenAI-compatible chat completion API. The API key
// and model are fixed at construction; there is no ambient state to read at
// call time.
type GroqClient struct {
	client *openai.Client
	apiKey string
	model  string
}

// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the versioned model every completion uses.
const DefaultModel = "llama-3.3-70b-versatile"

// NewGroqClient constructs a Groq-backed completion client. An empty apiKey
// is accepted here; Complete will refuse to place calls until one is set,
// so the rest of the service can still start and serve degraded replies.
func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &GroqClient{
		client: openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

// Complete sends the composed system+user message pair and returns the
// model's text. Sampling is deterministic (temperature 0). No retry, no
// streaming; a single request/response bounded by ctx.
func (c *GroqClient) Complete(ctx context.Context, req pkg.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: req.UserContent},
		},
		// go-openai drops a zero Temperature from the request body
		// (omitempty), which would leave the provider on its own default.
		// The smallest nonzero float still serializes and pins sampling
		// to an effective zero.
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
