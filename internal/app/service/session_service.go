package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/pkg/logger"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one visitor's storefront state: a configurator selection, a
// cart and a favorites list. All access goes through Do, which serializes
// operations the way a single browser tab would.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	lastSeen  time.Time
	selection *SelectionManager
	cart      *CartStore
	favorites *FavoritesStore
}

// SessionState is what a Do callback may read and mutate.
type SessionState struct {
	Selection *SelectionManager
	Cart      *CartStore
	Favorites *FavoritesStore
}

// Do runs fn while holding the session lock.
func (s *Session) Do(fn func(state SessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(SessionState{
		Selection: s.selection,
		Cart:      s.cart,
		Favorites: s.favorites,
	})
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type SessionService interface {
	Create() *Session
	Get(id string) (*Session, error)
	End(id string) error
	// SweepIdle ends every session untouched for longer than the idle
	// timeout and returns how many were removed.
	SweepIdle() int
	Count() int
}

type sessionService struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	catalog     repository.CatalogRepository
	checker     CompatibilityChecker
	idleTimeout time.Duration
	now         func() time.Time
}

func NewSessionService(catalog repository.CatalogRepository, checker CompatibilityChecker, idleTimeout time.Duration) SessionService {
	return &sessionService{
		sessions:    make(map[string]*Session),
		catalog:     catalog,
		checker:     checker,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

func (s *sessionService) Create() *Session {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
		selection: NewSelectionManager(s.catalog, s.checker),
		cart:      NewCartStore(),
		favorites: NewFavoritesStore(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	total := len(s.sessions)
	s.mu.Unlock()

	logger.Info("Session created", map[string]interface{}{
		"session_id": session.ID,
		"active":     total,
	})
	return session
}

// Get returns a live session and marks it as used.
func (s *sessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch(s.now())
	return session, nil
}

func (s *sessionService) End(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	logger.Info("Session ended", map[string]interface{}{
		"session_id": id,
	})
	return nil
}

func (s *sessionService) SweepIdle() int {
	if s.idleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	removed := 0
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		logger.Info("Idle sessions swept", map[string]interface{}{
			"removed":   removed,
			"remaining": remaining,
		})
	}
	return removed
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
