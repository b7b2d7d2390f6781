package shared

import (
	"context"

	"github.com/google/uuid"
)

// UnitOfWork wraps the write path in a transaction. Webhook reconciliation
// relies on it: the order upsert and the entitlement upserts for one delivery
// either all land or none do.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories bound to one open transaction.
type Tx interface {
	Orders() OrderRepository
	Entitlements() EntitlementRepository
}

type OrderRepository interface {
	// Upsert inserts or updates the order keyed by session id. The status
	// column is monotonic in finality: a paid row never regresses on a
	// re-delivered or late non-paid report.
	Upsert(ctx context.Context, rec *OrderRecord) error

	// StatusBySession reads the current status of the order keyed by session
	// id, or "" when no such order exists yet.
	StatusBySession(ctx context.Context, sessionID string) (string, error)
}

type EntitlementRepository interface {
	// UpsertActive grants (or reaffirms) active access, keyed uniquely by
	// (user, lab). Safe to call repeatedly for the same pair.
	UpsertActive(ctx context.Context, userID, labID uuid.UUID, source string) error
}
