package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository keeps sessions in process memory, expiring them lazily after ttl.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySession{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sweep()

	entry := memoryEntry{session: *session}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.sessions[session.ID] = entry

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	entry, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	if that.expired(entry) {
		that.mu.Lock()
		// the entry may have been rewritten since the read lock was released
		if current, found := that.sessions[id]; found && that.expired(current) {
			delete(that.sessions, id)
		}
		that.mu.Unlock()

		return nil, apperror.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.sessions[id]
	delete(that.sessions, id)

	if !ok || that.expired(entry) {
		return apperror.ErrSessionNotFound
	}

	return nil
}

// sweep drops every expired entry. The caller holds the write lock.
func (that *memorySession) sweep() {
	if that.ttl <= 0 {
		return
	}

	for id, entry := range that.sessions {
		if that.expired(entry) {
			delete(that.sessions, id)
		}
	}
}

func (that *memorySession) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}
