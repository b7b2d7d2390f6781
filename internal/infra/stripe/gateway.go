package stripe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v82"

	"labforge/internal/pkg/config"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/commands"
)

// Gateway creates hosted checkout sessions through the Stripe API.
type Gateway struct {
	client     *stripe.Client
	successURL string
	cancelURL  string
}

func NewGateway(cfg config.StripeConfig) *Gateway {
	return &Gateway{
		client:     stripe.NewClient(cfg.APIKey, nil),
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (g *Gateway) CreateSession(ctx context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSessionRedirect, error) {
	name := sessionItemName(req.LineItems)

	params := &stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.UserID.String()),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.FinalAmountCents),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
				},
			},
		},
		Metadata: sessionMetadata(req),
	}

	sess, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}

	return &commands.CheckoutSessionRedirect{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// sessionMetadata flattens the request into string pairs. Stripe metadata
// values cannot nest, so lab ids are joined with commas.
func sessionMetadata(req commands.CheckoutSessionRequest) map[string]string {
	ids := make([]string, len(req.LabIDs))
	for i, id := range req.LabIDs {
		ids[i] = id.String()
	}

	md := map[string]string{
		"user_id":               req.UserID.String(),
		"lab_ids":               strings.Join(ids, ","),
		"currency":              req.Currency,
		"original_amount_cents": strconv.FormatInt(req.OriginalAmountCents, 10),
		"discount_cents":        strconv.FormatInt(req.DiscountCents, 10),
		"final_amount_cents":    strconv.FormatInt(req.FinalAmountCents, 10),
	}
	if len(ids) > 0 {
		md["lab_id"] = ids[0]
	}
	if req.CouponCode != "" {
		md["coupon_code"] = req.CouponCode
	}
	return md
}

func sessionItemName(items []commands.SessionLineItem) string {
	switch len(items) {
	case 0:
		return "Lab access"
	case 1:
		return items[0].Title
	default:
		return fmt.Sprintf("%s and %d more labs", items[0].Title, len(items)-1)
	}
}
