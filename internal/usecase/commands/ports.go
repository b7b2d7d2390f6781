package commands

import (
	"context"

	"github.com/google/uuid"
)

// The four processor event kinds the reconciler acts on. Everything else is
// acknowledged as ignored so the processor stops redelivering.
const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	EventCheckoutExpired       = "checkout.session.expired"
)

// SessionLineItem is one display line sent to the payment processor.
type SessionLineItem struct {
	Title       string
	AmountCents int64
}

// CheckoutSessionRequest carries everything the eventual webhook needs to
// reconcile the purchase. The gateway adapter flattens it into the
// processor's string-keyed metadata.
type CheckoutSessionRequest struct {
	UserID              uuid.UUID
	LabIDs              []uuid.UUID
	LineItems           []SessionLineItem
	Currency            string
	CouponCode          string // empty string sentinel when no coupon applied
	OriginalAmountCents int64
	DiscountCents       int64
	FinalAmountCents    int64
}

type CheckoutSessionRedirect struct {
	SessionID string
	URL       string
}

// CheckoutGateway creates one payment session at the external processor.
// The amount charged is exactly FinalAmountCents: discount math never runs on
// the processor side.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionRedirect, error)
}

// ProviderEvent is a verified, normalized webhook delivery. The adapter owns
// signature verification (against the raw body, before any parsing) and the
// decoding of flat metadata back into structured fields; delimited-string
// encodings never leak past it.
type ProviderEvent struct {
	Kind            string
	SessionID       string
	PaymentIntentID *string
	UserID          *uuid.UUID // nil when the delivery carries no resolvable buyer
	LabIDs          []uuid.UUID
	CouponCode      string
	AmountCents     int64  // clamped non-negative by the adapter
	Currency        string // empty when absent or unrecognized
	PaymentStatus   string
}

// WebhookVerifier authenticates a raw delivery and normalizes it.
type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signatureHeader string) (*ProviderEvent, error)
}
