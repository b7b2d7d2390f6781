//go:build unit || e2e

package builder

import (
	"time"

	"labforge/internal/domain/coupon"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID             uuid.UUID
	Code           string
	AmountOffCents *int64
	PercentOff     *float64
	Currency       *string
	LabID          *uuid.UUID
	Active         bool
	ExpiresAt      *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	pct := 10.0
	return &CouponBuilder{
		ID:         uuid.New(),
		Code:       "WELCOME10",
		PercentOff: &pct,
		Active:     true,
	}
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithPercentOff(pct float64) *CouponBuilder {
	b.PercentOff = &pct
	b.AmountOffCents = nil
	return b
}

func (b *CouponBuilder) WithAmountOff(cents int64, currency string) *CouponBuilder {
	b.AmountOffCents = &cents
	b.Currency = &currency
	b.PercentOff = nil
	return b
}

func (b *CouponBuilder) WithLabRestriction(labID uuid.UUID) *CouponBuilder {
	b.LabID = &labID
	return b
}

func (b *CouponBuilder) WithExpiry(t time.Time) *CouponBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.Active = false
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.ID, b.Code, b.AmountOffCents, b.PercentOff, b.Currency, b.LabID, b.Active, b.ExpiresAt)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:             b.ID,
		Code:           b.Code,
		AmountOffCents: b.AmountOffCents,
		PercentOff:     b.PercentOff,
		Currency:       b.Currency,
		LabID:          b.LabID,
		Active:         b.Active,
		ExpiresAt:      b.ExpiresAt,
	}
}
