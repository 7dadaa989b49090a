package callsession

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]CallSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]CallSession)}
}

func (m *MemoryStore) Get(_ context.Context, callID string) (CallSession, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[callID]
	return s, ok, nil
}

func (m *MemoryStore) GetOrCreate(_ context.Context, callID string) (CallSession, error) {
	if callID == "" {
		return CallSession{}, ErrEmptyCallID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[callID]; ok {
		return s, nil
	}
	s := newSession(callID)
	m.sessions[callID] = s
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, session CallSession) error {
	if session.CallConnectionID == "" {
		return ErrEmptyCallID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.CallConnectionID] = session
	return nil
}

// Remove deletes the session. Removing an unknown id is not an error.
func (m *MemoryStore) Remove(_ context.Context, callID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, callID)
	return nil
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
