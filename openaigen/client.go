// Package openaigen is the OpenAI-backed text generator, selected with
// PROVIDER=openai for deployments without a Gemini key.
package openaigen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"

	"linernotes/config"
)

type Client struct {
	client openai.Client
	model  string
}

func New() (*Client, error) {
	cfg := config.Config.OpenAI
	if cfg.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))

	log.Infof("OpenAI client initialized with model %s", cfg.Model)
	return &Client{client: client, model: cfg.Model}, nil
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	span := sentry.StartSpan(ctx, "openai.generate")
	span.Description = "Generate content with OpenAI"
	span.SetTag("model", c.model)
	defer span.Finish()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		span.Status = sentry.SpanStatusInternalError
		return "", errors.New("openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		span.Status = sentry.SpanStatusInternalError
		return "", errors.New("openai returned an empty response")
	}

	log.Debugf("OpenAI returned %d bytes", len(text))
	span.Status = sentry.SpanStatusOK
	return text, nil
}
