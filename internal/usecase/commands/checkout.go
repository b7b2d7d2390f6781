package commands

import (
	"context"
	"log/slog"

	"labforge/internal/domain/entitlement"
	"labforge/internal/domain/order"
	"labforge/internal/pkg/clock"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/queries"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAlreadyEntitled         = errs.New("already entitled to this lab")
	ErrFreeAccessOnly          = errs.New("discount reduces the amount to zero")
	ErrCartNotFree             = errs.New("cart is not free of charge")
	ErrPaymentGateway          = errs.New("payment gateway failure")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CheckoutSessionResult struct {
	URL              string
	FinalAmountCents int64
	DiscountCents    int64
	Currency         string
}

type FreeAccessResult struct {
	GrantedLabIDs []uuid.UUID
}

type CheckoutCommands interface {
	// CreateCheckoutSession builds a fresh quote for one lab and opens a
	// payment session for exactly the quoted final amount. It never grants
	// access itself; the webhook reconciler does that on settlement.
	CreateCheckoutSession(ctx context.Context, userID, labID uuid.UUID, currency string, couponCode *string) (*CheckoutSessionResult, error)

	// GrantFreeAccess is the zero-cost path. A cart whose final amount is
	// zero never goes through the processor: access is granted directly and
	// a synthetic paid order is recorded for audit.
	GrantFreeAccess(ctx context.Context, userID uuid.UUID, labIDs []uuid.UUID, currency string, couponCode *string) (*FreeAccessResult, error)
}

type checkoutCommandsImpl struct {
	quotes       queries.QuoteQueries
	entitlements shared.EntitlementReadStore
	gateway      CheckoutGateway
	uow          shared.UnitOfWork
	clock        clock.Clock
}

func NewCheckoutCommands(
	quotes queries.QuoteQueries,
	entitlements shared.EntitlementReadStore,
	gateway CheckoutGateway,
	uow shared.UnitOfWork,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		quotes:       quotes,
		entitlements: entitlements,
		gateway:      gateway,
		uow:          uow,
		clock:        clock,
	}
}

func (c *checkoutCommandsImpl) CreateCheckoutSession(
	ctx context.Context,
	userID, labID uuid.UUID,
	currency string,
	couponCode *string,
) (*CheckoutSessionResult, error) {
	// Double-submission guard: a resubmitted form must not open a second
	// session for a lab the buyer already owns.
	owned, err := c.entitlements.HasActive(ctx, userID, labID)
	if err != nil {
		slog.Error("failed to check existing entitlement", "user_id", userID, "lab_id", labID, "error", err.Error())
		return nil, ErrDatabaseOperationFailed
	}
	if owned {
		return nil, ErrAlreadyEntitled
	}

	quote, err := c.quotes.BuildQuote(ctx, userID, []uuid.UUID{labID}, currency, couponCode)
	if err != nil {
		return nil, err
	}

	if quote.FreeAccess {
		// Zero-amount sessions are rejected upstream; route through the
		// free-access grant instead.
		return nil, ErrFreeAccessOnly
	}

	req := CheckoutSessionRequest{
		UserID:              userID,
		LabIDs:              labIDsOf(quote),
		LineItems:           lineItemsOf(quote),
		Currency:            quote.Currency,
		CouponCode:          quote.CouponCode,
		OriginalAmountCents: quote.OriginalAmountCents,
		DiscountCents:       quote.DiscountCents,
		FinalAmountCents:    quote.FinalAmountCents,
	}

	redirect, err := c.gateway.CreateSession(ctx, req)
	if err != nil {
		slog.Error("payment gateway rejected session", "user_id", userID, "lab_id", labID, "error", err.Error())
		return nil, ErrPaymentGateway
	}

	slog.Info("checkout session created",
		"session_id", redirect.SessionID,
		"user_id", userID,
		"lab_id", labID,
		"amount_cents", quote.FinalAmountCents,
		"currency", quote.Currency)

	return &CheckoutSessionResult{
		URL:              redirect.URL,
		FinalAmountCents: quote.FinalAmountCents,
		DiscountCents:    quote.DiscountCents,
		Currency:         quote.Currency,
	}, nil
}

func (c *checkoutCommandsImpl) GrantFreeAccess(
	ctx context.Context,
	userID uuid.UUID,
	labIDs []uuid.UUID,
	currency string,
	couponCode *string,
) (*FreeAccessResult, error) {
	quote, err := c.quotes.BuildQuote(ctx, userID, labIDs, currency, couponCode)
	if err != nil {
		return nil, err
	}

	if !quote.FreeAccess {
		return nil, ErrCartNotFree
	}

	granted := labIDsOf(quote)
	rec := c.freeOrderRecord(userID, quote, granted)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Upsert(ctx, rec); err != nil {
			return err
		}
		for _, labID := range granted {
			if err := tx.Entitlements().UpsertActive(ctx, userID, labID, string(entitlement.SourceFree)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("transaction failed during free access grant", "user_id", userID, "error", err.Error())
		return nil, ErrDatabaseOperationFailed
	}

	slog.Info("free access granted",
		"user_id", userID,
		"lab_count", len(granted),
		"coupon_code", quote.CouponCode)

	return &FreeAccessResult{GrantedLabIDs: granted}, nil
}

func (c *checkoutCommandsImpl) freeOrderRecord(userID uuid.UUID, quote *queries.QuoteView, granted []uuid.UUID) *shared.OrderRecord {
	original := quote.OriginalAmountCents
	discount := quote.DiscountCents
	return &shared.OrderRecord{
		SessionID:   "free_" + uuid.NewString(),
		UserID:      userID,
		LabID:       granted[0],
		AmountCents: 0,
		Currency:    quote.Currency,
		CouponCode:  quote.CouponCode,
		Status:      string(order.StatusPaid),
		Metadata: shared.OrderMetadata{
			LabIDs:              granted,
			LabCount:            len(granted),
			OriginalAmountCents: &original,
			DiscountCents:       &discount,
		},
		UpdatedAt: c.clock.Now(),
	}
}

func labIDsOf(quote *queries.QuoteView) []uuid.UUID {
	ids := make([]uuid.UUID, len(quote.Items))
	for i, item := range quote.Items {
		ids[i] = item.LabID
	}
	return ids
}

func lineItemsOf(quote *queries.QuoteView) []SessionLineItem {
	items := make([]SessionLineItem, len(quote.Items))
	for i, item := range quote.Items {
		items[i] = SessionLineItem{Title: item.Title, AmountCents: item.AmountCents}
	}
	return items
}
