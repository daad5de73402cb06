// Package ports declares the persistence interfaces the services depend
// on, so file-backed implementations and in-memory fakes are
// interchangeable.
package ports

import (
	"context"

	"github.com/alazar/finance-backend/internal/models"
)

// DocumentRepository owns the single document. Load never fails on a
// missing or unparseable file — it synthesizes the default document
// instead. Save replaces the persisted document wholesale.
type DocumentRepository interface {
	Load(ctx context.Context) (models.Document, error)
	Save(ctx context.Context, doc models.Document) error
}

// AuthRepository owns the singleton admin credential, initializing it to
// the default pair on first load.
type AuthRepository interface {
	Load(ctx context.Context) (models.AuthRecord, error)
	Save(ctx context.Context, rec models.AuthRecord) error
}

// TokenStore is the active bearer-token set. Membership is the sole
// authorization fact: no expiry, no per-token metadata.
type TokenStore interface {
	Contains(ctx context.Context, token string) bool
	Add(ctx context.Context, token string) error
	Remove(ctx context.Context, token string) error
}
