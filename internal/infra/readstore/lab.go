package readstore

import (
	"context"

	"labforge/internal/infra"
	"labforge/internal/infra/db"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type LabReadStore struct {
	db db.DBTX
}

func NewLabReadStore(db db.DBTX) *LabReadStore {
	return &LabReadStore{db: db}
}

const findLabsByIDs = `
SELECT id, title
FROM labs
WHERE id = ANY($1)
`

func (r *LabReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.LabSnapshot, error) {
	rows, err := r.db.Query(ctx, findLabsByIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query labs", err)
	}
	defer rows.Close()

	var labs []shared.LabSnapshot
	for rows.Next() {
		var lab shared.LabSnapshot
		if err := rows.Scan(&lab.ID, &lab.Title); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lab row", err)
		}
		labs = append(labs, lab)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lab rows", err)
	}

	return labs, nil
}
