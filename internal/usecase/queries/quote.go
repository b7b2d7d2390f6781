package queries

import (
	"context"

	"labforge/internal/domain/catalog"
	"labforge/internal/domain/coupon"
	"labforge/internal/infra"
	"labforge/internal/pkg/clock"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabSelection   = errs.New("no labs selected")
	ErrUnsupportedCurrency = errs.New("unsupported currency")
	ErrLabNotFound         = errs.New("lab not found")
	ErrNoActivePrice       = errs.New("no active price for lab")
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrInvalidCoupon       = errs.New("invalid coupon")
	ErrNothingToPurchase   = errs.New("nothing to purchase")
)

// QuoteLineItem is one payable (lab, amount) pair within a quote.
type QuoteLineItem struct {
	LabID       uuid.UUID `json:"lab_id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amount_cents"`
}

// QuoteView is an ephemeral computation, never persisted. It is the single
// source of "what will be charged": the preview endpoint and the checkout
// session initiator both consume it, so identical inputs must produce
// identical output.
type QuoteView struct {
	Currency            string          `json:"currency"`
	Items               []QuoteLineItem `json:"items"`
	OriginalAmountCents int64           `json:"original_amount_cents"`
	DiscountCents       int64           `json:"discount_cents"`
	FinalAmountCents    int64           `json:"final_amount_cents"`
	CouponApplied       bool            `json:"coupon_applied"`
	CouponCode          string          `json:"coupon_code,omitempty"`
	FreeAccess          bool            `json:"free_access"`
}

type QuoteQueries interface {
	// BuildQuote prices the requested labs for the buyer in the requested
	// currency, excluding labs the buyer already owns and applying an
	// optional coupon. Read-only.
	BuildQuote(ctx context.Context, userID uuid.UUID, labIDs []uuid.UUID, currency string, couponCode *string) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	labs         shared.LabReadStore
	prices       shared.PriceReadStore
	coupons      shared.CouponReadStore
	entitlements shared.EntitlementReadStore
	supported    catalog.SupportedCurrencies
	clock        clock.Clock
}

func NewQuoteQueries(
	labs shared.LabReadStore,
	prices shared.PriceReadStore,
	coupons shared.CouponReadStore,
	entitlements shared.EntitlementReadStore,
	supported catalog.SupportedCurrencies,
	clock clock.Clock,
) QuoteQueries {
	return &quoteQueriesImpl{
		labs:         labs,
		prices:       prices,
		coupons:      coupons,
		entitlements: entitlements,
		supported:    supported,
		clock:        clock,
	}
}

func (q *quoteQueriesImpl) BuildQuote(
	ctx context.Context,
	userID uuid.UUID,
	labIDs []uuid.UUID,
	currency string,
	couponCode *string,
) (*QuoteView, error) {
	requested := dedupeIDs(labIDs)
	if len(requested) == 0 {
		return nil, ErrEmptyLabSelection
	}

	cur, err := catalog.NewCurrency(currency)
	if err != nil || !q.supported.Contains(cur) {
		return nil, ErrUnsupportedCurrency
	}

	items, err := q.payableItems(ctx, userID, requested, cur)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// Buyer already owns everything requested. Not an error state for the
		// caller, but there is nothing to charge.
		return nil, ErrNothingToPurchase
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.AmountCents
	}

	view := &QuoteView{
		Currency:            cur.String(),
		Items:               items,
		OriginalAmountCents: subtotal,
		FinalAmountCents:    subtotal,
	}

	if couponCode != nil {
		discount, applied, err := q.applyCoupon(ctx, *couponCode, cur, items)
		if err != nil {
			return nil, err
		}
		view.DiscountCents = discount
		view.CouponApplied = true
		view.CouponCode = applied
		final := subtotal - discount
		if final < 0 {
			final = 0
		}
		view.FinalAmountCents = final
	}

	view.FreeAccess = view.FinalAmountCents == 0
	return view, nil
}

// payableItems resolves the priced line items the buyer would actually pay
// for: labs already actively owned are silently excluded (repeat quotes stay
// idempotent), and any price-resolution failure fails the whole quote rather
// than silently dropping an unpriced lab.
func (q *quoteQueriesImpl) payableItems(
	ctx context.Context,
	userID uuid.UUID,
	requested []uuid.UUID,
	cur catalog.Currency,
) ([]QuoteLineItem, error) {
	labs, err := q.labs.FindByIDs(ctx, requested)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLabNotFound
		}
		return nil, errs.Mark(err, ErrLabNotFound)
	}
	byID := make(map[uuid.UUID]*catalog.Lab, len(labs))
	for _, row := range labs {
		lab, err := catalog.NewLab(row.ID, row.Title)
		if err != nil {
			return nil, errs.Wrap(err, "invalid lab row")
		}
		byID[row.ID] = lab
	}
	for _, id := range requested {
		if _, ok := byID[id]; !ok {
			return nil, ErrLabNotFound
		}
	}

	owned, err := q.entitlements.ActiveLabIDs(ctx, userID, requested)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load entitlements")
	}
	ownedSet := make(map[uuid.UUID]struct{}, len(owned))
	for _, id := range owned {
		ownedSet[id] = struct{}{}
	}

	priceRows, err := q.prices.ActiveByLabs(ctx, requested)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load prices")
	}
	pricesByLab := make(map[uuid.UUID][]catalog.Price, len(requested))
	for _, row := range priceRows {
		rowCur, err := catalog.NewCurrency(row.Currency)
		if err != nil {
			continue
		}
		price, err := catalog.NewPrice(row.LabID, rowCur, row.AmountCents, row.Active)
		if err != nil {
			return nil, errs.Wrap(err, "invalid price row")
		}
		pricesByLab[row.LabID] = append(pricesByLab[row.LabID], price)
	}

	items := make([]QuoteLineItem, 0, len(requested))
	for _, id := range requested {
		if _, ok := ownedSet[id]; ok {
			continue
		}
		price, err := catalog.ResolvePrice(pricesByLab[id], cur, q.supported)
		if err != nil {
			return nil, ErrNoActivePrice
		}
		items = append(items, QuoteLineItem{
			LabID:       id,
			Title:       byID[id].Title(),
			AmountCents: price.AmountCents(),
		})
	}
	return items, nil
}

func (q *quoteQueriesImpl) applyCoupon(
	ctx context.Context,
	code string,
	cur catalog.Currency,
	items []QuoteLineItem,
) (int64, string, error) {
	canonical, err := coupon.NewCode(code)
	if err != nil {
		return 0, "", ErrInvalidCoupon
	}

	snap, err := q.coupons.FindByCode(ctx, canonical.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, "", ErrCouponNotFound
		}
		return 0, "", errs.Mark(err, ErrCouponNotFound)
	}

	couponEntity, err := coupon.NewCoupon(
		snap.ID,
		snap.Code,
		snap.AmountOffCents,
		snap.PercentOff,
		snap.Currency,
		snap.LabID,
		snap.Active,
		snap.ExpiresAt,
	)
	if err != nil {
		return 0, "", ErrInvalidCoupon
	}

	priced := make([]coupon.PricedItem, len(items))
	for i, item := range items {
		priced[i] = coupon.PricedItem{LabID: item.LabID, AmountCents: item.AmountCents}
	}

	discount, err := couponEntity.DiscountFor(q.clock.Now(), cur, priced)
	if err != nil {
		return 0, "", ErrInvalidCoupon
	}

	return discount, couponEntity.Code().String(), nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
