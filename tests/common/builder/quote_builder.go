//go:build unit || e2e

package builder

import (
	reqdto "labforge/internal/handler/dto/request"
	"labforge/internal/usecase/queries"
	"labforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	UserID      uuid.UUID
	LabIDs      []uuid.UUID
	Titles      []string
	AmountCents int64
	Currency    string
	CouponCode  string
	Discount    int64
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		UserID:      uuid.New(),
		LabIDs:      []uuid.UUID{uuid.New()},
		Titles:      []string{"Kubernetes Fundamentals"},
		AmountCents: 4900,
		Currency:    "USD",
	}
}

func (b *QuoteBuilder) WithLabs(n int) *QuoteBuilder {
	b.LabIDs = make([]uuid.UUID, n)
	b.Titles = make([]string, n)
	for i := range b.LabIDs {
		b.LabIDs[i] = uuid.New()
		b.Titles[i] = "Lab " + string(rune('A'+i))
	}
	return b
}

func (b *QuoteBuilder) WithCurrency(cur string) *QuoteBuilder {
	b.Currency = cur
	return b
}

func (b *QuoteBuilder) WithCoupon(code string, discount int64) *QuoteBuilder {
	b.CouponCode = code
	b.Discount = discount
	return b
}

func (b *QuoteBuilder) BuildView() *queries.QuoteView {
	items := make([]queries.QuoteLineItem, len(b.LabIDs))
	var subtotal int64
	for i, id := range b.LabIDs {
		items[i] = queries.QuoteLineItem{LabID: id, Title: b.Titles[i], AmountCents: b.AmountCents}
		subtotal += b.AmountCents
	}
	final := subtotal - b.Discount
	if final < 0 {
		final = 0
	}
	return &queries.QuoteView{
		Currency:            b.Currency,
		Items:               items,
		OriginalAmountCents: subtotal,
		DiscountCents:       b.Discount,
		FinalAmountCents:    final,
		CouponApplied:       b.CouponCode != "",
		CouponCode:          b.CouponCode,
		FreeAccess:          final == 0,
	}
}

func (b *QuoteBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	req := reqdto.QuoteRequest{
		LabIDs:   b.LabIDs,
		Currency: b.Currency,
	}
	if b.CouponCode != "" {
		code := b.CouponCode
		req.CouponCode = &code
	}
	return req
}

func (b *QuoteBuilder) BuildSessionRequestDTO() reqdto.CreateSessionRequest {
	req := reqdto.CreateSessionRequest{
		LabID:    b.LabIDs[0],
		Currency: b.Currency,
	}
	if b.CouponCode != "" {
		code := b.CouponCode
		req.CouponCode = &code
	}
	return req
}

func (b *QuoteBuilder) BuildFreeAccessRequestDTO() reqdto.FreeAccessRequest {
	req := reqdto.FreeAccessRequest{
		LabIDs:   b.LabIDs,
		Currency: b.Currency,
	}
	if b.CouponCode != "" {
		code := b.CouponCode
		req.CouponCode = &code
	}
	return req
}

func (b *QuoteBuilder) BuildLabSnapshots() []shared.LabSnapshot {
	labs := make([]shared.LabSnapshot, len(b.LabIDs))
	for i, id := range b.LabIDs {
		labs[i] = shared.LabSnapshot{ID: id, Title: b.Titles[i]}
	}
	return labs
}

func (b *QuoteBuilder) BuildPriceSnapshots() []shared.PriceSnapshot {
	prices := make([]shared.PriceSnapshot, len(b.LabIDs))
	for i, id := range b.LabIDs {
		prices[i] = shared.PriceSnapshot{
			ID:          uuid.New(),
			LabID:       id,
			Currency:    b.Currency,
			AmountCents: b.AmountCents,
			Active:      true,
		}
	}
	return prices
}
