package store

import (
	"context"

	"github.com/me/shopadmin/pkg/model"
)

// Store defines the dashboard's persistence layer. The dashboard holds
// no business data of its own — the platform API owns all of that — so
// the store only keeps login sessions.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	DeleteSessionsByUserID(ctx context.Context, userID string) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
