// Package callsession holds the per-call state shared by the events of one call
// and the stores that keep it between webhook deliveries.
package callsession

import (
	"context"
	"errors"
	"time"
)

var ErrEmptyCallID = errors.New("call connection id is required")

// CallSession is the mutable state of one answered call.
type CallSession struct {
	CallConnectionID string `json:"callConnectionId"`
	// Language is the locale detected from the first non-empty utterance.
	// Empty until detection runs; never changed afterwards.
	Language     string `json:"language,omitempty"`
	SilenceCount int    `json:"silenceCount"`
	// AgentSessionHandle is owned by this call and released on disconnect.
	AgentSessionHandle string    `json:"agentSessionHandle,omitempty"`
	CallerRawID        string    `json:"callerRawId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// HasLanguage reports whether detection already ran for the call.
func (s CallSession) HasLanguage() bool {
	return s.Language != ""
}

// Store maps call connection ids to sessions. Callers serialize access per id
// with Locks; the store itself only guarantees that each method is atomic.
type Store interface {
	Get(ctx context.Context, callID string) (CallSession, bool, error)
	GetOrCreate(ctx context.Context, callID string) (CallSession, error)
	Save(ctx context.Context, session CallSession) error
	Remove(ctx context.Context, callID string) error
}

func newSession(callID string) CallSession {
	return CallSession{CallConnectionID: callID, CreatedAt: time.Now().UTC()}
}
