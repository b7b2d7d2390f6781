package request

import (
	"strings"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	LabIDs     []uuid.UUID `json:"lab_ids" binding:"required,min=1"`
	Currency   string      `json:"currency" binding:"required,len=3"`
	CouponCode *string     `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

type CreateSessionRequest struct {
	LabID      uuid.UUID `json:"lab_id" binding:"required"`
	Currency   string    `json:"currency" binding:"required,len=3"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

func (r CreateSessionRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

type FreeAccessRequest struct {
	LabIDs     []uuid.UUID `json:"lab_ids" binding:"required,min=1"`
	Currency   string      `json:"currency" binding:"required,len=3"`
	CouponCode *string     `json:"coupon_code,omitempty"`
}

func (r FreeAccessRequest) GetCouponCode() *string {
	return normalizeCouponCode(r.CouponCode)
}

func normalizeCouponCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
