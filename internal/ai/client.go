package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("model returned no choices")

// Config holds the Azure OpenAI connection settings.
type Config struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
	Timeout    time.Duration
}

// Client wraps a single outbound chat-completion call. Decoding parameters
// are fixed; only the system prompt differs between operations.
type Client struct {
	api        *openai.Client
	deployment string
	timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	acfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		acfg.APIVersion = cfg.APIVersion
	}

	return &Client{
		api:        openai.NewClientWithConfig(acfg),
		deployment: cfg.Deployment,
		timeout:    cfg.Timeout,
	}
}

// GenerateTimeTable asks the model for a weekly study schedule. The planning
// parameters are forwarded verbatim as the user turn; the returned text is
// expected to be a JSON array, possibly wrapped in a markdown fence.
func (c *Client) GenerateTimeTable(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, timeTablePrompt, text)
}

// StudyBuddy forwards a single chat message under the study-buddy persona
// and returns the model's reply verbatim.
func (c *Client) StudyBuddy(ctx context.Context, message string) (string, error) {
	return c.complete(ctx, studyBuddyPrompt, message)
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            c.deployment,
		MaxTokens:        8000,
		Temperature:      0.1,
		TopP:             0.21,
		FrequencyPenalty: 0.02,
		PresencePenalty:  0.03,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
