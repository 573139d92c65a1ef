package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"govdocgo/internal/models"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// analysisTemperature keeps extraction near-deterministic.
const analysisTemperature float32 = 0.1

// ErrNoContent reports that the backend returned no text at all. It is
// surfaced once and never retried.
var ErrNoContent = errors.New("AI가 텍스트 응답을 반환하지 않았습니다")

// Client wraps the generative backend. It is an explicitly constructed
// dependency passed into the services that need it, never process-wide
// state, so tests can substitute the backend behind small interfaces.
type Client struct {
	genai  *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient dials the generative backend with the given API key.
func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{genai: client, model: model, logger: logger}, nil
}

// GenerateStructured runs one schema-constrained generation over the
// ordered part sequence and returns the raw response text.
func (c *Client) GenerateStructured(ctx context.Context, parts []models.Part) (string, error) {
	content := genai.NewContentFromParts(convertParts(parts), genai.RoleUser)
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(analysisTemperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema,
	}

	c.logger.Info("sending analysis request", zap.String("model", c.model), zap.Int("parts", len(parts)))

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, []*genai.Content{content}, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// ChatWithSearch sends one conversational turn seeded with the given
// system instruction and caller-supplied history. Search grounding is
// enabled as a backend tool flag, not a separate search client.
func (c *Client) ChatWithSearch(ctx context.Context, system string, history []models.ChatTurn, message string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	chat, err := c.genai.Chats.Create(ctx, c.model, cfg, convertHistory(history))
	if err != nil {
		return "", fmt.Errorf("create chat session: %w", err)
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send chat message: %w", err)
	}
	return resp.Text(), nil
}

func convertParts(parts []models.Part) []*genai.Part {
	converted := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsInline() {
			converted = append(converted, genai.NewPartFromBytes(p.Data, p.MimeType))
		} else {
			converted = append(converted, genai.NewPartFromText(p.Text))
		}
	}
	return converted
}

func convertHistory(history []models.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == models.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return contents
}
