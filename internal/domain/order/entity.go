package order

import (
	"errors"
	"time"

	"labforge/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrMissingSessionID = errors.New("order session id cannot be empty")
	ErrNoLabs           = errors.New("order must reference at least one lab")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// Order is the durable record of one payment-session lifecycle, keyed uniquely
// by the processor-issued session id. Only a primary lab is a first-class
// column; the full lab-id set travels in metadata so multi-lab purchases are
// preserved.
type Order struct {
	sessionID       string
	paymentIntentID *string
	userID          uuid.UUID
	labIDs          []uuid.UUID
	amountCents     int64
	currency        catalog.Currency
	couponCode      string
	status          Status
	updatedAt       time.Time
}

func New(
	sessionID string,
	paymentIntentID *string,
	userID uuid.UUID,
	labIDs []uuid.UUID,
	amountCents int64,
	currency catalog.Currency,
	couponCode string,
	status Status,
	updatedAt time.Time,
) (*Order, error) {
	if sessionID == "" {
		return nil, ErrMissingSessionID
	}
	if len(labIDs) == 0 {
		return nil, ErrNoLabs
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if amountCents < 0 {
		amountCents = 0
	}

	return &Order{
		sessionID:       sessionID,
		paymentIntentID: paymentIntentID,
		userID:          userID,
		labIDs:          dedupe(labIDs),
		amountCents:     amountCents,
		currency:        currency,
		couponCode:      couponCode,
		status:          status,
		updatedAt:       updatedAt,
	}, nil
}

func (o *Order) SessionID() string          { return o.sessionID }
func (o *Order) PaymentIntentID() *string   { return o.paymentIntentID }
func (o *Order) UserID() uuid.UUID          { return o.userID }
func (o *Order) PrimaryLabID() uuid.UUID    { return o.labIDs[0] }
func (o *Order) LabIDs() []uuid.UUID        { return o.labIDs }
func (o *Order) AmountCents() int64         { return o.amountCents }
func (o *Order) Currency() catalog.Currency { return o.currency }
func (o *Order) CouponCode() string         { return o.couponCode }
func (o *Order) Status() Status             { return o.status }
func (o *Order) UpdatedAt() time.Time       { return o.updatedAt }

// dedupe preserves first-seen order so the primary lab stays stable.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
