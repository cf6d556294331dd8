package scheduler

import (
	"testing"
	"time"

	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct{ calls int }

func (p *countingPurger) Purge() int {
	p.calls++
	return 2
}

func setupSweeperTest(t *testing.T, idle time.Duration) service.SessionService {
	catalog, err := repository.NewCatalogRepository(repository.CatalogOptions{})
	require.NoError(t, err)
	return service.NewSessionService(catalog, service.NewCompatibilityChecker(catalog), idle)
}

func TestSessionSweeper_RunOnce(t *testing.T) {
	sessions := setupSweeperTest(t, time.Nanosecond)
	sessions.Create()
	sessions.Create()
	time.Sleep(time.Millisecond)

	purger := &countingPurger{}
	sweeper := NewSessionSweeper("", sessions, purger)

	swept, purged := sweeper.RunOnce()
	assert.Equal(t, 2, swept)
	assert.Equal(t, 2, purged)
	assert.Equal(t, 1, purger.calls)
	assert.Zero(t, sessions.Count())
}

func TestSessionSweeper_InvalidSpec(t *testing.T) {
	sweeper := NewSessionSweeper("not a schedule", setupSweeperTest(t, time.Hour))
	assert.Error(t, sweeper.Start())
}

func TestSessionSweeper_StartStop(t *testing.T) {
	sweeper := NewSessionSweeper("@every 1h", setupSweeperTest(t, time.Hour), repository.NewMemorySnapshotRepository())
	require.NoError(t, sweeper.Start())
	sweeper.Stop()
}
