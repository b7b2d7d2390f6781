package readstore

import (
	"context"

	"labforge/internal/infra"
	"labforge/internal/infra/db"
	"labforge/internal/pkg/pgconv"
	"labforge/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

// Codes are stored canonical uppercase; uppercasing the submitted code makes
// the lookup case-insensitive.
const findCouponByCode = `
SELECT id, code, amount_off_cents, percent_off, currency, lab_id, active, expires_at
FROM coupons
WHERE code = upper($1)
`

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	row := r.db.QueryRow(ctx, findCouponByCode, code)

	var (
		snap       shared.CouponSnapshot
		amountOff  pgtype.Int8
		percentOff pgtype.Numeric
		currency   pgtype.Text
		labID      pgtype.UUID
		expiresAt  pgtype.Timestamptz
	)
	err := row.Scan(&snap.ID, &snap.Code, &amountOff, &percentOff, &currency, &labID, &snap.Active, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	snap.AmountOffCents = pgconv.Int64PtrFromPgtype(amountOff)
	snap.Currency = pgconv.StringPtrFromPgtype(currency)
	snap.LabID = pgconv.UUIDPtrFromPgtype(labID)
	snap.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)

	pct, err := pgconv.Float64PtrFromNumeric(percentOff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon percent_off", err)
	}
	snap.PercentOff = pct

	return &snap, nil
}
