package readstore

import (
	"context"

	"labforge/internal/infra"
	"labforge/internal/infra/db"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type PriceReadStore struct {
	db db.DBTX
}

func NewPriceReadStore(db db.DBTX) *PriceReadStore {
	return &PriceReadStore{db: db}
}

const findActivePricesByLabs = `
SELECT id, lab_id, currency, amount_cents, active
FROM prices
WHERE lab_id = ANY($1) AND active
`

func (r *PriceReadStore) ActiveByLabs(ctx context.Context, labIDs []uuid.UUID) ([]shared.PriceSnapshot, error) {
	rows, err := r.db.Query(ctx, findActivePricesByLabs, labIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query prices", err)
	}
	defer rows.Close()

	var prices []shared.PriceSnapshot
	for rows.Next() {
		var p shared.PriceSnapshot
		if err := rows.Scan(&p.ID, &p.LabID, &p.Currency, &p.AmountCents, &p.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price row", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price rows", err)
	}

	return prices, nil
}
