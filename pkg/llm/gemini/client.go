// Package gemini adapts the Google GenAI SDK to llm.ChatModel.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/artem13815/hrboard/pkg/llm"
)

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client sends single-turn prompts to Gemini.
type Client struct {
	models    generator
	modelName string
}

var _ llm.ChatModel = (*Client)(nil)

// New creates a client for the Gemini API backend. An empty key yields a client
// whose calls fail with llm.ErrNotConfigured. There is no default model: an empty
// one is reported by Model() and rejected before any call is made.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	model = strings.TrimSpace(model)
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &Client{modelName: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{models: client.Models, modelName: model}, nil
}

func (c *Client) Provider() string { return "gemini" }

func (c *Client) Model() string { return c.modelName }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.generate(ctx, systemPrompt, userPrompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	})
}

func (c *Client) AskJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.generate(ctx, systemPrompt, userPrompt, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		ResponseMIMEType: "application/json",
	})
}

func (c *Client) generate(ctx context.Context, systemPrompt, userPrompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if c == nil || c.models == nil {
		return "", fmt.Errorf("gemini: %w", llm.ErrNotConfigured)
	}
	if s := strings.TrimSpace(systemPrompt); s != "" {
		cfg.SystemInstruction = genai.NewContentFromText(s, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, c.modelName, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
		// one candidate is requested; ignore any extras
		break
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("gemini: %w", llm.ErrEmptyResponse)
	}
	return output, nil
}
