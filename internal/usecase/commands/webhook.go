package commands

import (
	"context"
	"log/slog"

	"labforge/internal/domain/catalog"
	"labforge/internal/domain/entitlement"
	"labforge/internal/domain/order"
	"labforge/internal/pkg/clock"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/shared"
)

var (
	ErrInvalidSignature = errs.New("webhook signature verification failed")
	ErrMissingSessionID = errs.New("webhook event has no session id")
)

type WebhookResult struct {
	Ignored   bool
	SessionID string
	Status    string
}

type WebhookCommands interface {
	// ProcessDelivery verifies, classifies, and applies one raw webhook
	// delivery. Persistence failures surface as errors so the processor
	// redelivers; irrelevant or unresolvable events return Ignored.
	ProcessDelivery(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}

type webhookCommandsImpl struct {
	verifier  WebhookVerifier
	uow       shared.UnitOfWork
	supported catalog.SupportedCurrencies
	clock     clock.Clock
}

func NewWebhookCommands(
	verifier WebhookVerifier,
	uow shared.UnitOfWork,
	supported catalog.SupportedCurrencies,
	clock clock.Clock,
) WebhookCommands {
	return &webhookCommandsImpl{
		verifier:  verifier,
		uow:       uow,
		supported: supported,
		clock:     clock,
	}
}

func (w *webhookCommandsImpl) ProcessDelivery(
	ctx context.Context,
	payload []byte,
	signatureHeader string,
) (*WebhookResult, error) {
	event, err := w.verifier.VerifyAndParse(payload, signatureHeader)
	if err != nil {
		slog.Warn("webhook signature rejected", "error", err.Error())
		return nil, ErrInvalidSignature
	}

	if !isCheckoutEvent(event.Kind) {
		// Forward compatibility: the processor adds event kinds over time.
		return &WebhookResult{Ignored: true}, nil
	}

	if event.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	if event.UserID == nil || len(event.LabIDs) == 0 {
		// Malformed or foreign delivery; acknowledging stops redelivery.
		slog.Warn("webhook event missing buyer or lab metadata, ignoring",
			"kind", event.Kind,
			"session_id", event.SessionID)
		return &WebhookResult{Ignored: true}, nil
	}

	ord, err := w.domainOrder(event)
	if err != nil {
		slog.Warn("webhook event failed order validation, ignoring",
			"kind", event.Kind,
			"session_id", event.SessionID,
			"error", err.Error())
		return &WebhookResult{Ignored: true}, nil
	}

	// The reported status is reconciled against whatever the previous
	// delivery left behind: paid stays terminal even when deliveries for the
	// same session arrive out of order.
	var final order.Status
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Orders().StatusBySession(ctx, ord.SessionID())
		if err != nil {
			return err
		}
		final = order.Transition(order.Status(current), ord.Status())
		if err := tx.Orders().Upsert(ctx, w.orderRecord(ord, final)); err != nil {
			return err
		}
		if final != order.StatusPaid {
			return nil
		}
		for _, labID := range ord.LabIDs() {
			if err := tx.Entitlements().UpsertActive(ctx, ord.UserID(), labID, string(entitlement.SourceStripe)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Never swallowed: a 5xx here is what makes the processor retry.
		slog.Error("transaction failed during webhook reconcile", "session_id", event.SessionID, "error", err.Error())
		return nil, ErrDatabaseOperationFailed
	}

	slog.Info("webhook event reconciled",
		"kind", event.Kind,
		"session_id", event.SessionID,
		"status", string(final),
		"lab_count", len(ord.LabIDs()))

	return &WebhookResult{
		SessionID: ord.SessionID(),
		Status:    string(final),
	}, nil
}

func isCheckoutEvent(kind string) bool {
	switch kind {
	case EventCheckoutCompleted, EventAsyncPaymentSucceeded, EventAsyncPaymentFailed, EventCheckoutExpired:
		return true
	}
	return false
}

// mapStatus folds an event kind and the processor-reported payment status
// into the order lifecycle. Any classified event reporting "paid" maps to
// paid, so a completed event that settled synchronously grants immediately.
func mapStatus(kind, paymentStatus string) order.Status {
	switch kind {
	case EventCheckoutExpired:
		return order.StatusExpired
	case EventAsyncPaymentFailed:
		return order.StatusFailed
	case EventAsyncPaymentSucceeded:
		return order.StatusPaid
	}
	if paymentStatus == "paid" {
		return order.StatusPaid
	}
	return order.StatusCreated
}

// domainOrder lifts the provider event into the order entity, falling back
// to the primary currency when the processor reports one we do not sell in.
func (w *webhookCommandsImpl) domainOrder(event *ProviderEvent) (*order.Order, error) {
	cur, err := catalog.NewCurrency(event.Currency)
	if err != nil || !w.supported.Contains(cur) {
		cur = w.supported.Primary()
	}

	return order.New(
		event.SessionID,
		event.PaymentIntentID,
		*event.UserID,
		event.LabIDs,
		event.AmountCents,
		cur,
		event.CouponCode,
		mapStatus(event.Kind, event.PaymentStatus),
		w.clock.Now(),
	)
}

func (w *webhookCommandsImpl) orderRecord(ord *order.Order, status order.Status) *shared.OrderRecord {
	return &shared.OrderRecord{
		SessionID:       ord.SessionID(),
		PaymentIntentID: ord.PaymentIntentID(),
		UserID:          ord.UserID(),
		LabID:           ord.PrimaryLabID(),
		AmountCents:     ord.AmountCents(),
		Currency:        ord.Currency().String(),
		CouponCode:      ord.CouponCode(),
		Status:          string(status),
		Metadata: shared.OrderMetadata{
			LabIDs:   ord.LabIDs(),
			LabCount: len(ord.LabIDs()),
		},
		UpdatedAt: ord.UpdatedAt(),
	}
}
