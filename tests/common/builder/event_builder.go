//go:build unit || e2e

package builder

import (
	"labforge/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProviderEventBuilder struct {
	Kind            string
	SessionID       string
	PaymentIntentID *string
	UserID          *uuid.UUID
	LabIDs          []uuid.UUID
	CouponCode      string
	AmountCents     int64
	Currency        string
	PaymentStatus   string
}

func NewProviderEventBuilder() *ProviderEventBuilder {
	userID := uuid.New()
	intentID := "pi_" + uuid.NewString()[:8]
	return &ProviderEventBuilder{
		Kind:            commands.EventCheckoutCompleted,
		SessionID:       "cs_test_" + uuid.NewString()[:8],
		PaymentIntentID: &intentID,
		UserID:          &userID,
		LabIDs:          []uuid.UUID{uuid.New()},
		AmountCents:     4900,
		Currency:        "USD",
		PaymentStatus:   "paid",
	}
}

func (b *ProviderEventBuilder) WithKind(kind string) *ProviderEventBuilder {
	b.Kind = kind
	return b
}

func (b *ProviderEventBuilder) WithPaymentStatus(status string) *ProviderEventBuilder {
	b.PaymentStatus = status
	return b
}

func (b *ProviderEventBuilder) WithoutBuyer() *ProviderEventBuilder {
	b.UserID = nil
	return b
}

func (b *ProviderEventBuilder) WithLabIDs(ids ...uuid.UUID) *ProviderEventBuilder {
	b.LabIDs = ids
	return b
}

func (b *ProviderEventBuilder) Build() *commands.ProviderEvent {
	return &commands.ProviderEvent{
		Kind:            b.Kind,
		SessionID:       b.SessionID,
		PaymentIntentID: b.PaymentIntentID,
		UserID:          b.UserID,
		LabIDs:          b.LabIDs,
		CouponCode:      b.CouponCode,
		AmountCents:     b.AmountCents,
		Currency:        b.Currency,
		PaymentStatus:   b.PaymentStatus,
	}
}
