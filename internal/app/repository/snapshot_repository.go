package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository stores immutable serialized values under opaque keys
// until they expire. Checkout handoffs and confirmations live here.
type SnapshotRepository interface {
	Save(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Find(ctx context.Context, key string) ([]byte, error)
	// Take returns the value and removes it in one step. Of several
	// concurrent takes of one key, exactly one gets the value.
	Take(ctx context.Context, key string) ([]byte, error)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySnapshotRepository keeps snapshots in process memory. Expired
// entries are dropped lazily on read and by Purge.
type MemorySnapshotRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *MemorySnapshotRepository) Save(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()

	logger.Debug("Snapshot stored in memory", map[string]interface{}{
		"key":   key,
		"bytes": len(data),
		"ttl":   ttl.String(),
	})
	return nil
}

func (r *MemorySnapshotRepository) Find(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSnapshotNotFound
	}
	if r.expired(entry) {
		r.mu.Lock()
		delete(r.entries, key)
		r.mu.Unlock()
		return nil, ErrSnapshotNotFound
	}
	return append([]byte(nil), entry.data...), nil
}

func (r *MemorySnapshotRepository) Take(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	entry, ok := r.entries[key]
	delete(r.entries, key)
	r.mu.Unlock()

	if !ok || r.expired(entry) {
		return nil, ErrSnapshotNotFound
	}
	return entry.data, nil
}

// Purge removes every expired entry and returns how many were dropped.
func (r *MemorySnapshotRepository) Purge() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, entry := range r.entries {
		if r.expired(entry) {
			delete(r.entries, key)
			removed++
		}
	}
	return removed
}

func (r *MemorySnapshotRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt)
}
