package response

import (
	"github.com/google/uuid"

	"labforge/internal/usecase/commands"
	"labforge/internal/usecase/queries"
)

type QuoteItemResponse struct {
	LabID       uuid.UUID `json:"labId"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amountCents"`
}

type QuoteResponse struct {
	Currency            string              `json:"currency"`
	Items               []QuoteItemResponse `json:"items"`
	OriginalAmountCents int64               `json:"originalAmountCents"`
	DiscountCents       int64               `json:"discountCents"`
	FinalAmountCents    int64               `json:"finalAmountCents"`
	CouponApplied       bool                `json:"couponApplied"`
	CouponCode          string              `json:"couponCode,omitempty"`
	FreeAccess          bool                `json:"freeAccess"`
}

type CheckoutSessionResponse struct {
	URL              string `json:"url"`
	FinalAmountCents int64  `json:"finalAmountCents"`
	DiscountCents    int64  `json:"discountCents"`
	Currency         string `json:"currency"`
}

type FreeAccessResponse struct {
	GrantedLabIDs []uuid.UUID `json:"grantedLabIds"`
}

type WebhookAckResponse struct {
	OK        bool   `json:"ok"`
	Ignored   bool   `json:"ignored,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Status    string `json:"status,omitempty"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	items := make([]QuoteItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = QuoteItemResponse{
			LabID:       item.LabID,
			Title:       item.Title,
			AmountCents: item.AmountCents,
		}
	}
	return &QuoteResponse{
		Currency:            view.Currency,
		Items:               items,
		OriginalAmountCents: view.OriginalAmountCents,
		DiscountCents:       view.DiscountCents,
		FinalAmountCents:    view.FinalAmountCents,
		CouponApplied:       view.CouponApplied,
		CouponCode:          view.CouponCode,
		FreeAccess:          view.FreeAccess,
	}
}

func FromCheckoutSessionResult(result *commands.CheckoutSessionResult) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		URL:              result.URL,
		FinalAmountCents: result.FinalAmountCents,
		DiscountCents:    result.DiscountCents,
		Currency:         result.Currency,
	}
}

func FromFreeAccessResult(result *commands.FreeAccessResult) *FreeAccessResponse {
	return &FreeAccessResponse{GrantedLabIDs: result.GrantedLabIDs}
}

func FromWebhookResult(result *commands.WebhookResult) *WebhookAckResponse {
	return &WebhookAckResponse{
		OK:        true,
		Ignored:   result.Ignored,
		SessionID: result.SessionID,
		Status:    result.Status,
	}
}
