package sessionstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"appointment-assistant/internal/pkg/clock"
	"appointment-assistant/internal/usecase/shared"
)

// MemoryStore keeps sessions in process. Entries idle longer than ttl are treated as absent
// and removed by the janitor.
type MemoryStore struct {
	clock    clock.Clock
	ttl      time.Duration
	interval time.Duration

	mu       sync.Mutex
	sessions map[string]*shared.Session

	stop chan struct{}
	done chan struct{}
}

func NewMemoryStore(clock clock.Clock, ttl, interval time.Duration) *MemoryStore {
	return &MemoryStore{
		clock:    clock,
		ttl:      ttl,
		interval: interval,
		sessions: make(map[string]*shared.Session),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*shared.Session, error) {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.sessions[id]
	if !ok || m.expired(stored, now) {
		delete(m.sessions, id)
		return shared.NewSession(id, now), nil
	}
	return clone(stored), nil
}

func (m *MemoryStore) Save(_ context.Context, s *shared.Session) error {
	s.UpdatedAt = m.clock.Now()
	c := clone(s)

	m.mu.Lock()
	m.sessions[s.ID] = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included until swept.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (m *MemoryStore) Sweep() int {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Start runs the janitor until Stop is called. It is a no-op when the interval is not positive.
func (m *MemoryStore) Start() {
	if m.interval <= 0 || m.stop != nil {
		return
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := m.Sweep(); n > 0 {
					slog.Debug("Expired sessions evicted", "count", n)
				}
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *MemoryStore) Stop() {
	if m.stop == nil {
		return
	}
	close(m.stop)
	<-m.done
	m.stop = nil
}

func (m *MemoryStore) expired(s *shared.Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.UpdatedAt) > m.ttl
}

// clone detaches callers from the stored value so only Save publishes changes.
func clone(s *shared.Session) *shared.Session {
	c := *s
	c.History = append([]shared.Turn(nil), s.History...)
	return &c
}
