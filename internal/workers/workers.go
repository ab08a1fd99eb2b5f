package workers

import (
	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/session"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background workers: currently only the
// session expiry watcher.
func NewWorkers(cfg config.ClientWorkers, sessions *session.Store, auth sessionCloser, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionWatcher(cfg.WatchInterval, sessions, auth, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports an orderly stop.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(Stoppable); ok {
			stoppable.Stop()
		}
	}
}
