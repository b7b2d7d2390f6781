package repository

import (
	"context"

	"labforge/internal/infra"
	"labforge/internal/infra/db"

	"github.com/google/uuid"
)

type EntitlementRepository struct {
	db db.DBTX
}

func NewEntitlementRepository(db db.DBTX) *EntitlementRepository {
	return &EntitlementRepository{db: db}
}

// The (user_id, lab_id) unique key makes concurrent duplicate grants resolve
// to one row; re-granting only reaffirms active status.
const upsertEntitlement = `
INSERT INTO entitlements (user_id, lab_id, status, source, updated_at)
VALUES ($1, $2, 'active', $3, now())
ON CONFLICT (user_id, lab_id) DO UPDATE SET
	status     = 'active',
	source     = EXCLUDED.source,
	updated_at = now()
`

func (r *EntitlementRepository) UpsertActive(ctx context.Context, userID, labID uuid.UUID, source string) error {
	if _, err := r.db.Exec(ctx, upsertEntitlement, userID, labID, source); err != nil {
		return infra.WrapRepoErr("failed to upsert entitlement", err)
	}
	return nil
}
