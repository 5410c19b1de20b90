package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"linernotes/config"
)

// Client wraps the Gemini SDK behind the tracklist.TextGenerator capability.
type Client struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context) (*Client, error) {
	cfg := config.Config.Gemini
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Infof("Gemini client initialized with model %s", cfg.Model)
	return &Client{client: client, model: cfg.Model}, nil
}

// Generate sends the prompt and returns the concatenated text of the reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	span := sentry.StartSpan(ctx, "gemini.generate")
	span.Description = "Generate content with Gemini"
	span.SetTag("model", c.model)
	defer span.Finish()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		span.Status = sentry.SpanStatusInternalError
		return "", errors.New("gemini returned an empty response")
	}

	log.Debugf("Gemini returned %d bytes", len(text))
	span.Status = sentry.SpanStatusOK
	return text, nil
}
