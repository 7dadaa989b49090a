// Package agent talks to the hosted conversational agent. A session is one
// conversation; the handle returned by CreateSession addresses it afterwards.
package agent

import (
	"context"
	"errors"
)

// FallbackReply is returned when the agent finishes a turn without any text.
const FallbackReply = "No reply received from agent."

var (
	ErrRunFailed      = errors.New("agent run did not complete")
	ErrUnknownSession = errors.New("unknown agent session")
)

// Client is implemented by every agent backend.
type Client interface {
	CreateSession(ctx context.Context) (string, error)
	Send(ctx context.Context, handle, text string) (string, error)
	DeleteSession(ctx context.Context, handle string) error
}
