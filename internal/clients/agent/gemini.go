package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"voiceorder-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const geminiInstruction = "You are a friendly food ordering assistant answering the phone. " +
	"Keep every reply short enough to be spoken aloud and answer in the caller's language."

type chatModel interface {
	reply(ctx context.Context, history []*genai.Content, text string) (string, error)
}

type geminiModel struct {
	model *genai.GenerativeModel
}

func (g geminiModel) reply(ctx context.Context, history []*genai.Content, text string) (string, error) {
	chat := g.model.StartChat()
	chat.History = history
	resp, err := chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}
	return "", nil
}

// GeminiClient keeps the conversation history locally and replays it on every
// turn, so a session lives only as long as this process.
type GeminiClient struct {
	client   *genai.Client
	model    chatModel
	mu       sync.Mutex
	sessions map[string][]*genai.Content
	logger   *observability.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger *observability.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(geminiInstruction)}}

	g := newGeminiClient(geminiModel{model: model}, logger)
	g.client = client
	return g, nil
}

func newGeminiClient(model chatModel, logger *observability.Logger) *GeminiClient {
	return &GeminiClient{
		model:    model,
		sessions: make(map[string][]*genai.Content),
		logger:   logger,
	}
}

func (g *GeminiClient) CreateSession(_ context.Context) (string, error) {
	handle := "gemini-" + uuid.New().String()
	g.mu.Lock()
	g.sessions[handle] = nil
	g.mu.Unlock()
	return handle, nil
}

func (g *GeminiClient) Send(ctx context.Context, handle, text string) (string, error) {
	g.mu.Lock()
	history, ok := g.sessions[handle]
	history = append([]*genai.Content(nil), history...)
	g.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSession, handle)
	}

	reply, err := g.model.reply(ctx, history, text)
	if err != nil {
		g.logger.Error(ctx, "gemini turn failed", err)
		return "", fmt.Errorf("gemini turn failed: %w", err)
	}
	if reply == "" {
		reply = FallbackReply
	}

	g.mu.Lock()
	if _, ok := g.sessions[handle]; ok {
		g.sessions[handle] = append(g.sessions[handle],
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(text)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(reply)}},
		)
	}
	g.mu.Unlock()
	return reply, nil
}

func (g *GeminiClient) DeleteSession(_ context.Context, handle string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[handle]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, handle)
	}
	delete(g.sessions, handle)
	return nil
}

// Close releases the underlying client.
func (g *GeminiClient) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
