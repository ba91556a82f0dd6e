// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

// mockSessionStore implements the session repository surface the sweeper
// needs; the untouched methods panic to flag accidental use.
type mockSessionStore struct {
	deleteExpiredFn func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockSessionStore) CreateSession(context.Context, models.Session) error {
	panic("unexpected call")
}

func (m *mockSessionStore) FindSession(context.Context, string) (models.Session, error) {
	panic("unexpected call")
}

func (m *mockSessionStore) UpdateSessionExpiry(context.Context, string, time.Time) error {
	panic("unexpected call")
}

func (m *mockSessionStore) DeleteSession(context.Context, string) error {
	panic("unexpected call")
}

func (m *mockSessionStore) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	return m.deleteExpiredFn(ctx, before)
}

func TestSessionCleanupWorker_Sweep(t *testing.T) {
	now := time.Now()

	var gotBefore time.Time
	sessions := &mockSessionStore{
		deleteExpiredFn: func(_ context.Context, before time.Time) (int64, error) {
			gotBefore = before
			return 2, nil
		},
	}

	w := newSessionCleanupWorker(sessions, logger.Nop())
	w.now = func() time.Time { return now }

	w.sweep()

	assert.True(t, gotBefore.Equal(now))
}

func TestSessionCleanupWorker_Sweep_ErrorDoesNotPanic(t *testing.T) {
	sessions := &mockSessionStore{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			return 0, errors.New("db gone")
		},
	}

	w := newSessionCleanupWorker(sessions, logger.Nop())

	assert.NotPanics(t, w.sweep)
}
