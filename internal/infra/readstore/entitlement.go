package readstore

import (
	"context"

	"labforge/internal/infra"
	"labforge/internal/infra/db"

	"github.com/google/uuid"
)

type EntitlementReadStore struct {
	db db.DBTX
}

func NewEntitlementReadStore(db db.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{db: db}
}

const findActiveEntitledLabs = `
SELECT lab_id
FROM entitlements
WHERE user_id = $1 AND lab_id = ANY($2) AND status = 'active'
`

func (r *EntitlementReadStore) ActiveLabIDs(ctx context.Context, userID uuid.UUID, labIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, findActiveEntitledLabs, userID, labIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query entitlements", err)
	}
	defer rows.Close()

	var owned []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan entitlement row", err)
		}
		owned = append(owned, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read entitlement rows", err)
	}

	return owned, nil
}

const hasActiveEntitlement = `
SELECT EXISTS (
	SELECT 1 FROM entitlements
	WHERE user_id = $1 AND lab_id = $2 AND status = 'active'
)
`

func (r *EntitlementReadStore) HasActive(ctx context.Context, userID, labID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasActiveEntitlement, userID, labID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check entitlement", err)
	}
	return exists, nil
}
