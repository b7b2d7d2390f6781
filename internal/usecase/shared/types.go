package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command/query read operations

type LabSnapshot struct {
	ID    uuid.UUID
	Title string
}

type PriceSnapshot struct {
	ID          uuid.UUID
	LabID       uuid.UUID
	Currency    string
	AmountCents int64
	Active      bool
}

type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	AmountOffCents *int64
	PercentOff     *float64
	Currency       *string
	LabID          *uuid.UUID
	Active         bool
	ExpiresAt      *time.Time
}

// OrderMetadata is the free-form payload stored alongside an order. The full
// lab-id set lives here even though only the primary lab is a first-class
// column, so multi-lab purchases survive reconciliation.
type OrderMetadata struct {
	LabIDs              []uuid.UUID `json:"lab_ids"`
	LabCount            int         `json:"lab_count"`
	OriginalAmountCents *int64      `json:"original_amount_cents,omitempty"`
	DiscountCents       *int64      `json:"discount_cents,omitempty"`
}

type OrderRecord struct {
	SessionID       string
	PaymentIntentID *string
	UserID          uuid.UUID
	LabID           uuid.UUID // primary lab
	AmountCents     int64
	Currency        string
	CouponCode      string
	Status          string
	Metadata        OrderMetadata
	UpdatedAt       time.Time
}

type LabReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]LabSnapshot, error)
}

type PriceReadStore interface {
	// ActiveByLabs returns every active price row for the given labs, all
	// currencies included.
	ActiveByLabs(ctx context.Context, labIDs []uuid.UUID) ([]PriceSnapshot, error)
}

type CouponReadStore interface {
	// FindByCode is case-insensitive; codes are stored canonical uppercase.
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type EntitlementReadStore interface {
	// ActiveLabIDs filters labIDs down to those the user actively owns.
	ActiveLabIDs(ctx context.Context, userID uuid.UUID, labIDs []uuid.UUID) ([]uuid.UUID, error)
	HasActive(ctx context.Context, userID, labID uuid.UUID) (bool, error)
}
