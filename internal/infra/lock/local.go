package lock

import (
	"context"
	"sync"
	"time"
)

// LocalLocker keeps holds in process memory. Used when Redis is disabled,
// so it only protects a single instance.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]localHold
	now  func() time.Time
	seq  uint64
}

type localHold struct {
	id        uint64
	expiresAt time.Time
}

// NewLocalLocker creates an in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held: make(map[string]localHold),
		now:  time.Now,
	}
}

// Acquire takes the hold or returns ErrNotAcquired. Expired holds are taken over.
func (l *LocalLocker) Acquire(_ context.Context, key string, ttl time.Duration) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if h, ok := l.held[key]; ok && now.Before(h.expiresAt) {
		return nil, ErrNotAcquired
	}

	l.seq++
	id := l.seq
	l.held[key] = localHold{id: id, expiresAt: now.Add(ttl)}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if h, ok := l.held[key]; ok && h.id == id {
			delete(l.held, key)
		}
		return nil
	}, nil
}
