package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("fixed discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be greater than 0 and at most 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is canonical uppercase. Lookups are case-insensitive by uppercasing
// both the stored and the submitted code.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents <= 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffCents: &amountOffCents}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff <= 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffCents *int64, percentOff *float64) (Discount, error) {
	if amountOffCents != nil && percentOff != nil {
		return Discount{}, errors.New("discount can only be either fixed amount or percentage, not both")
	}

	if amountOffCents == nil && percentOff == nil {
		return Discount{}, errors.New("discount must have either fixed amount or percentage")
	}

	if amountOffCents != nil {
		return NewFixedDiscount(*amountOffCents)
	}

	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOffCents != nil
}

func (d Discount) AmountOffCents() int64 {
	if d.amountOffCents != nil {
		return *d.amountOffCents
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// AmountFor computes the discount against a target subtotal in minor units.
// The result is clamped to [0, targetSubtotal]: a coupon never discounts the
// targeted subset below zero.
func (d Discount) AmountFor(targetSubtotalCents int64) int64 {
	if targetSubtotalCents <= 0 {
		return 0
	}

	var amount int64
	if d.IsPercentage() {
		// round half up
		amount = decimal.NewFromInt(targetSubtotalCents).
			Mul(decimal.NewFromFloat(d.PercentOff())).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	} else {
		amount = d.AmountOffCents()
	}

	if amount > targetSubtotalCents {
		return targetSubtotalCents
	}
	if amount < 0 {
		return 0
	}
	return amount
}
