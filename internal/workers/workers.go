package workers

import (
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server process.
// Currently that is the expired-session sweeper.
func NewWorkers(storages *store.Storages, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionCleanupWorker(storages.SessionRepository, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
