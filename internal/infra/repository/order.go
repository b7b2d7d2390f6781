package repository

import (
	"context"
	"encoding/json"

	"labforge/internal/infra"
	"labforge/internal/infra/db"
	"labforge/internal/pkg/pgconv"
	"labforge/internal/usecase/shared"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// The session-id unique key absorbs at-least-once delivery: concurrent or
// repeated webhook deliveries for one session land on a single row. The
// status CASE keeps paid terminal so a late expired/failed report never
// regresses a settled order.
const upsertOrder = `
INSERT INTO orders (
	stripe_session_id, payment_intent_id, user_id, lab_id,
	amount_cents, currency, coupon_code, status, metadata, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (stripe_session_id) DO UPDATE SET
	payment_intent_id = COALESCE(EXCLUDED.payment_intent_id, orders.payment_intent_id),
	amount_cents      = EXCLUDED.amount_cents,
	currency          = EXCLUDED.currency,
	coupon_code       = EXCLUDED.coupon_code,
	status            = CASE
		WHEN orders.status = 'paid' AND EXCLUDED.status <> 'paid' THEN orders.status
		ELSE EXCLUDED.status
	END,
	metadata          = EXCLUDED.metadata,
	updated_at        = EXCLUDED.updated_at
`

const orderStatusBySession = `
SELECT status FROM orders WHERE stripe_session_id = $1
`

func (r *OrderRepository) StatusBySession(ctx context.Context, sessionID string) (string, error) {
	var status string
	err := r.db.QueryRow(ctx, orderStatusBySession, sessionID).Scan(&status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", nil
		}
		return "", infra.WrapRepoErr("failed to read order status", err)
	}
	return status, nil
}

func (r *OrderRepository) Upsert(ctx context.Context, rec *shared.OrderRecord) error {
	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal order metadata", err)
	}

	_, err = r.db.Exec(ctx, upsertOrder,
		rec.SessionID,
		pgconv.StringPtrToPgtype(rec.PaymentIntentID),
		rec.UserID,
		rec.LabID,
		rec.AmountCents,
		rec.Currency,
		rec.CouponCode,
		rec.Status,
		metadata,
		pgconv.TimeToPgtype(rec.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert order", err)
	}

	return nil
}
