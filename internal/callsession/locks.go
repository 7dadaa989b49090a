package callsession

import (
	"context"
	"sync"
)

type lockEntry struct {
	sem  chan struct{}
	refs int
}

// Locks serializes work per call id. Entries are dropped once no goroutine
// holds or waits for them, so the map only grows with concurrent calls.
type Locks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

func NewLocks() *Locks {
	return &Locks{entries: make(map[string]*lockEntry)}
}

// Acquire blocks until the lock for callID is held or ctx is done.
// The returned release func is safe to call more than once.
func (l *Locks) Acquire(ctx context.Context, callID string) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[callID]
	if !ok {
		e = &lockEntry{sem: make(chan struct{}, 1)}
		l.entries[callID] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.drop(callID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.drop(callID, e)
		})
	}, nil
}

func (l *Locks) drop(callID string, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, callID)
	}
}

// Len returns the number of ids currently held or awaited.
func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
