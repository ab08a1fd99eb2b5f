// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/internal/utils"
)

// DefaultWatchInterval is used when the configuration does not set one.
const DefaultWatchInterval = 30 * time.Second

// sessionCloser is the slice of the client auth service the watcher needs.
type sessionCloser interface {
	Logout(ctx context.Context) error
}

// sessionWatcher periodically inspects the held token's expiry claim and
// logs the client out once the token goes stale, so the UI never keeps
// presenting a token the server would reject anyway.
type sessionWatcher struct {
	interval time.Duration
	sessions *session.Store
	auth     sessionCloser
	logger   *logger.Logger

	done chan struct{}
}

func newSessionWatcher(interval time.Duration, sessions *session.Store, auth sessionCloser, logger *logger.Logger) *sessionWatcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &sessionWatcher{
		interval: interval,
		sessions: sessions,
		auth:     auth,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (w *sessionWatcher) Run() {
	go w.loop()
}

func (w *sessionWatcher) Stop() {
	close(w.done)
}

func (w *sessionWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *sessionWatcher) check() {
	if !w.sessions.IsAuthenticated() {
		return
	}

	// The expiry claim is read without signature verification; only the
	// server ever trusts the token's contents.
	expiry, err := utils.ParseExpiryFromJWT(w.sessions.Token())
	if err != nil {
		w.logger.Warn().Err(err).Msg("held token is unreadable, logging out")
	} else if time.Now().Before(expiry) {
		return
	}

	if err = w.auth.Logout(context.Background()); err != nil {
		w.logger.Err(err).Msg("logout after token expiry failed")
		return
	}

	w.logger.Info().Msg("session expired, logged out")
}
