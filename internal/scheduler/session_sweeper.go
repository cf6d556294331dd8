package scheduler

import (
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DefaultSweepSpec runs the sweep every five minutes.
const DefaultSweepSpec = "@every 5m"

// Purger drops expired entries from an in-process store.
type Purger interface {
	Purge() int
}

// SessionSweeper evicts idle shopper sessions and purges expired in-memory
// checkout snapshots.
type SessionSweeper struct {
	cron     *cron.Cron
	spec     string
	sessions service.SessionService
	purgers  []Purger
}

func NewSessionSweeper(spec string, sessions service.SessionService, purgers ...Purger) *SessionSweeper {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	return &SessionSweeper{
		cron:     cron.New(),
		spec:     spec,
		sessions: sessions,
		purgers:  purgers,
	}
}

func (s *SessionSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce() }); err != nil {
		logger.Error("Failed to add cron job for session sweep", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Session sweeper started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// RunOnce performs a single sweep and reports what it removed.
func (s *SessionSweeper) RunOnce() (sessions int, snapshots int) {
	sessions = s.sessions.SweepIdle()
	for _, p := range s.purgers {
		snapshots += p.Purge()
	}

	if sessions > 0 || snapshots > 0 {
		logger.Info("Swept idle state", map[string]interface{}{
			"sessions":  sessions,
			"snapshots": snapshots,
			"remaining": s.sessions.Count(),
		})
	}
	return sessions, snapshots
}

// Stop waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	logger.Info("Stopping session sweeper...")
	<-s.cron.Stop().Done()
	logger.Info("Session sweeper stopped")
}
