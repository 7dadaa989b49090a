package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voiceorder-server/internal/observability"
)

var ErrEmptyInput = errors.New("input is required")

type AgentClient interface {
	CreateSession(ctx context.Context) (string, error)
	Send(ctx context.Context, handle, text string) (string, error)
	DeleteSession(ctx context.Context, handle string) error
}

type AgentProcessor struct {
	agent  AgentClient
	logger *observability.Logger
}

func New(agent AgentClient, logger *observability.Logger) *AgentProcessor {
	return &AgentProcessor{
		agent:  agent,
		logger: logger,
	}
}

// Ask runs a single-turn conversation in a throwaway session.
func (p *AgentProcessor) Ask(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}

	handle, err := p.agent.CreateSession(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to create agent session", err)
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_session", Value: handle})

	defer func() {
		if err := p.agent.DeleteSession(context.WithoutCancel(ctx), handle); err != nil {
			p.logger.WarnWithError(ctx, "failed to delete agent session", err)
		}
	}()

	reply, err := p.agent.Send(ctx, handle, input)
	if err != nil {
		p.logger.Error(ctx, "agent turn failed", err)
		return "", fmt.Errorf("agent turn failed: %w", err)
	}
	return reply, nil
}
