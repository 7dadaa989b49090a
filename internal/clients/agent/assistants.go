package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voiceorder-server/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// AssistantsClient drives an assistant through the threads and runs API.
// A thread is the session; every Send appends a user message and waits for a run.
type AssistantsClient struct {
	client       openai.Client
	assistantID  string
	pollInterval time.Duration
	logger       *observability.Logger
}

type AssistantsConfig struct {
	APIKey      string
	BaseURL     string
	AssistantID string
	Timeout     time.Duration
}

func NewAssistantsClient(cfg AssistantsConfig, logger *observability.Logger) *AssistantsClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(2),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &AssistantsClient{
		client:       openai.NewClient(opts...),
		assistantID:  cfg.AssistantID,
		pollInterval: 500 * time.Millisecond,
		logger:       logger,
	}
}

func (c *AssistantsClient) CreateSession(ctx context.Context) (string, error) {
	thread, err := c.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		c.logger.Error(ctx, "failed to create agent thread", err)
		return "", fmt.Errorf("failed to create agent thread: %w", err)
	}
	return thread.ID, nil
}

func (c *AssistantsClient) Send(ctx context.Context, handle, text string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_thread_id", Value: handle})

	_, err := c.client.Beta.Threads.Messages.New(ctx, handle, openai.BetaThreadMessageNewParams{
		Role:    openai.BetaThreadMessageNewParamsRoleUser,
		Content: openai.BetaThreadMessageNewParamsContentUnion{OfString: openai.String(text)},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to add message to agent thread", err)
		return "", fmt.Errorf("failed to add message to agent thread: %w", err)
	}

	run, err := c.client.Beta.Threads.Runs.New(ctx, handle, openai.BetaThreadRunNewParams{
		AssistantID: c.assistantID,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to start agent run", err)
		return "", fmt.Errorf("failed to start agent run: %w", err)
	}

	run, err = c.waitForRun(ctx, handle, run)
	if err != nil {
		return "", err
	}
	if run.Status != openai.RunStatusCompleted {
		err := fmt.Errorf("%w: status %s %s", ErrRunFailed, run.Status, run.LastError.Message)
		c.logger.Error(ctx, "agent run ended without completing", err)
		return "", err
	}

	page, err := c.client.Beta.Threads.Messages.List(ctx, handle, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderDesc,
		RunID: openai.String(run.ID),
		Limit: openai.Int(10),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to list agent messages", err)
		return "", fmt.Errorf("failed to list agent messages: %w", err)
	}

	for _, msg := range page.Data {
		if msg.Role != openai.MessageRoleAssistant {
			continue
		}
		var parts []string
		for _, content := range msg.Content {
			if content.Type == "text" && content.Text.Value != "" {
				parts = append(parts, content.Text.Value)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\n"), nil
		}
	}
	return FallbackReply, nil
}

func (c *AssistantsClient) waitForRun(ctx context.Context, handle string, run *openai.Run) (*openai.Run, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for run.Status == openai.RunStatusQueued || run.Status == openai.RunStatusInProgress || run.Status == openai.RunStatusCancelling {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for agent run: %w", ctx.Err())
		case <-ticker.C:
		}

		next, err := c.client.Beta.Threads.Runs.Get(ctx, handle, run.ID)
		if err != nil {
			c.logger.Error(ctx, "failed to poll agent run", err)
			return nil, fmt.Errorf("failed to poll agent run: %w", err)
		}
		run = next
	}
	return run, nil
}

func (c *AssistantsClient) DeleteSession(ctx context.Context, handle string) error {
	if _, err := c.client.Beta.Threads.Delete(ctx, handle); err != nil {
		return fmt.Errorf("failed to delete agent thread: %w", err)
	}
	return nil
}
