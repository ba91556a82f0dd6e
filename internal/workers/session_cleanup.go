package workers

import (
	"context"
	"time"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/store"
)

// cleanupInterval is how often the sweeper looks for expired sessions.
// Request handling already deletes expired sessions lazily; the sweeper only
// keeps the table from accumulating rows for browsers that never return.
const cleanupInterval = time.Hour

// sessionCleanupWorker periodically deletes expired session records.
type sessionCleanupWorker struct {
	sessions store.SessionRepository
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func newSessionCleanupWorker(sessions store.SessionRepository, logger *logger.Logger) *sessionCleanupWorker {
	return &sessionCleanupWorker{
		sessions: sessions,
		interval: cleanupInterval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run starts the sweep loop in a goroutine and returns immediately.
// The loop lives for the remainder of the process.
func (w *sessionCleanupWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep()
		}
	}()
}

func (w *sessionCleanupWorker) sweep() {
	deleted, err := w.sessions.DeleteExpiredSessions(context.Background(), w.now())
	if err != nil {
		w.logger.Err(err).Str("func", "*sessionCleanupWorker.sweep").Msg("expired session sweep failed")
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}
