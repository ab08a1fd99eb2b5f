package store

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the low-level local session store of the client.
// It persists at most one session at a time.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
