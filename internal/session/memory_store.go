package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. It backs local runs
// (SESSION_STORE=memory) and tests. Expiry is lazy on Get; an optional
// janitor sweeps dead records so the map does not grow without bound.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		stopCh:   make(chan struct{}),
	}
}

func (m *MemoryStore) Create(ctx context.Context, accountID int64, email string, ttl time.Duration) (*Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Token:     token,
		AccountID: accountID,
		Email:     email,
		ExpiresAt: time.Now().Add(ttl),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	return s, nil
}

func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return nil, nil
	}

	cp := *s
	return &cp, nil
}

func (m *MemoryStore) Destroy(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// StartJanitor launches a goroutine that periodically removes expired
// sessions. Get already treats expired records as absent, so the sweep has
// no observable effect beyond reclaiming memory.
func (m *MemoryStore) StartJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Close stops the janitor. Safe to call multiple times.
func (m *MemoryStore) Close() error {
	m.stopOnce.Do(func() { close(m.stopCh) })
	return nil
}

func (m *MemoryStore) sweep() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for token, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, token)
		}
	}
}
