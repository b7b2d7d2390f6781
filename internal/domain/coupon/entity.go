package coupon

import (
	"errors"
	"time"

	"labforge/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive         = errors.New("coupon is not active")
	ErrCouponExpired          = errors.New("coupon has expired")
	ErrCouponNotApplicable    = errors.New("coupon is not applicable to this cart")
	ErrCouponCurrencyMismatch = errors.New("coupon currency does not match the requested currency")
)

// PricedItem is one payable line a coupon can be evaluated against.
type PricedItem struct {
	LabID       uuid.UUID
	AmountCents int64
}

type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	currency  *catalog.Currency // fixed-amount coupons only
	labID     *uuid.UUID        // nil = applies to the entire cart
	active    bool
	expiresAt *time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	amountOffCents *int64,
	percentOff *float64,
	currency *string,
	labID *uuid.UUID,
	active bool,
	expiresAt *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(amountOffCents, percentOff)
	if err != nil {
		return nil, err
	}

	var boundCurrency *catalog.Currency
	if currency != nil {
		cur, err := catalog.NewCurrency(*currency)
		if err != nil {
			return nil, err
		}
		boundCurrency = &cur
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		currency:  boundCurrency,
		labID:     labID,
		active:    active,
		expiresAt: expiresAt,
	}, nil
}

func (c *Coupon) ID() uuid.UUID               { return c.id }
func (c *Coupon) Code() Code                  { return c.code }
func (c *Coupon) Discount() Discount          { return c.discount }
func (c *Coupon) Currency() *catalog.Currency { return c.currency }
func (c *Coupon) LabID() *uuid.UUID           { return c.labID }
func (c *Coupon) Active() bool                { return c.active }
func (c *Coupon) ExpiresAt() *time.Time       { return c.expiresAt }

// DiscountFor applies the coupon to a set of priced line items and returns the
// discount in minor units. Rules are evaluated in a fixed order, first failure
// wins:
//
//  1. active flag
//  2. expiry (expiry instant must be strictly in the future)
//  3. lab restriction: the target subset must be non-empty
//  4. percentage / fixed amount math (fixed requires matching currency)
//
// The returned discount is non-negative and never exceeds the target subtotal.
func (c *Coupon) DiscountFor(now time.Time, currency catalog.Currency, items []PricedItem) (int64, error) {
	if !c.active {
		return 0, ErrCouponInactive
	}

	if c.expiresAt != nil && !c.expiresAt.After(now) {
		return 0, ErrCouponExpired
	}

	target := items
	if c.labID != nil {
		matched := make([]PricedItem, 0, len(items))
		for _, item := range items {
			if item.LabID == *c.labID {
				matched = append(matched, item)
			}
		}
		if len(matched) == 0 {
			return 0, ErrCouponNotApplicable
		}
		target = matched
	}

	if c.discount.IsFixed() {
		// No auto-conversion: a fixed coupon bound to another currency is rejected.
		if c.currency == nil || *c.currency != currency {
			return 0, ErrCouponCurrencyMismatch
		}
	}

	var targetSubtotal int64
	for _, item := range target {
		targetSubtotal += item.AmountCents
	}

	return c.discount.AmountFor(targetSubtotal), nil
}
