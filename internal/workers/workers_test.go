// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker records that it ran and blocks until ctx is cancelled.
type blockingWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Store(true)
	<-ctx.Done()
	b.stopped.Store(true)
}

// countingSessions counts SweepExpired calls.
type countingSessions struct {
	calls atomic.Int32
	err   error
}

func (c *countingSessions) SweepExpired(context.Context) (int64, error) {
	c.calls.Add(1)
	return 0, c.err
}

func TestWorkers_Run_StartsAllAndWaits(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return w1.started.Load() && w2.started.Load() }, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before ctx was cancelled")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, w1.stopped.Load())
	assert.True(t, w2.stopped.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately with nothing to wait for
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{SessionService: &countingSessions{}}

	ws := NewWorkers(services, config.Workers{SessionSweepInterval: time.Minute}, logger.Nop())
	require.Len(t, ws.workers, 1)
	assert.IsType(t, &SessionSweeper{}, ws.workers[0])

	ws = NewWorkers(services, config.Workers{}, logger.Nop())
	assert.Empty(t, ws.workers)
}

func TestSessionSweeper_SweepsImmediatelyAndOnTick(t *testing.T) {
	sessions := &countingSessions{}
	s := NewSessionSweeper(sessions, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Run(ctx)
	}()

	require.Eventually(t, func() bool { return sessions.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	wg.Wait()
}

func TestSessionSweeper_KeepsRunningAfterError(t *testing.T) {
	sessions := &countingSessions{err: errors.New("db down")}
	s := NewSessionSweeper(sessions, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sessions.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestSessionSweeper_StopsOnCancelledContext(t *testing.T) {
	sessions := &countingSessions{}
	s := NewSessionSweeper(sessions, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Run(ctx)

	assert.Equal(t, int32(1), sessions.calls.Load())
}
