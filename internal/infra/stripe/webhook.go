package stripe

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"labforge/internal/pkg/config"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/commands"
)

// WebhookVerifier validates Stripe signatures and maps checkout session
// events into provider-neutral form.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(cfg config.StripeConfig) *WebhookVerifier {
	return &WebhookVerifier{secret: cfg.WebhookSecret}
}

func (v *WebhookVerifier) VerifyAndParse(payload []byte, signatureHeader string) (*commands.ProviderEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance: webhook.DefaultTolerance,
		// Deliveries carry the account-level API version, which moves
		// independently of the SDK.
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "signature verification failed")
	}

	kind := string(event.Type)
	if !strings.HasPrefix(kind, "checkout.session.") {
		return &commands.ProviderEvent{Kind: kind}, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errs.Wrap(err, "failed to decode checkout session payload")
	}

	ev := &commands.ProviderEvent{
		Kind:          kind,
		SessionID:     sess.ID,
		UserID:        sessionUserID(&sess),
		LabIDs:        sessionLabIDs(sess.Metadata),
		CouponCode:    sess.Metadata["coupon_code"],
		AmountCents:   max(sess.AmountTotal, 0),
		Currency:      strings.ToUpper(string(sess.Currency)),
		PaymentStatus: string(sess.PaymentStatus),
	}
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		ev.PaymentIntentID = &sess.PaymentIntent.ID
	}
	return ev, nil
}

func sessionUserID(sess *stripe.CheckoutSession) *uuid.UUID {
	raw := sess.Metadata["user_id"]
	if raw == "" {
		raw = sess.ClientReferenceID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func sessionLabIDs(md map[string]string) []uuid.UUID {
	raw := md["lab_ids"]
	if raw == "" {
		raw = md["lab_id"]
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
