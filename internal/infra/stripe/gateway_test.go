//go:build unit

package stripe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"labforge/internal/usecase/commands"
)

func TestSessionMetadata(t *testing.T) {
	userID := uuid.New()
	labA := uuid.New()
	labB := uuid.New()

	t.Run("flattens the full request", func(t *testing.T) {
		md := sessionMetadata(commands.CheckoutSessionRequest{
			UserID:              userID,
			LabIDs:              []uuid.UUID{labA, labB},
			Currency:            "USD",
			CouponCode:          "WELCOME10",
			OriginalAmountCents: 9800,
			DiscountCents:       980,
			FinalAmountCents:    8820,
		})

		assert.Equal(t, userID.String(), md["user_id"])
		assert.Equal(t, labA.String()+","+labB.String(), md["lab_ids"])
		assert.Equal(t, labA.String(), md["lab_id"])
		assert.Equal(t, "USD", md["currency"])
		assert.Equal(t, "WELCOME10", md["coupon_code"])
		assert.Equal(t, "9800", md["original_amount_cents"])
		assert.Equal(t, "980", md["discount_cents"])
		assert.Equal(t, "8820", md["final_amount_cents"])
	})

	t.Run("omits coupon key when no coupon applied", func(t *testing.T) {
		md := sessionMetadata(commands.CheckoutSessionRequest{
			UserID: userID,
			LabIDs: []uuid.UUID{labA},
		})

		_, ok := md["coupon_code"]
		assert.False(t, ok)
	})
}

func TestSessionItemName(t *testing.T) {
	assert.Equal(t, "Lab access", sessionItemName(nil))
	assert.Equal(t, "Kubernetes Fundamentals", sessionItemName([]commands.SessionLineItem{
		{Title: "Kubernetes Fundamentals"},
	}))
	assert.Equal(t, "Kubernetes Fundamentals and 2 more labs", sessionItemName([]commands.SessionLineItem{
		{Title: "Kubernetes Fundamentals"},
		{Title: "Terraform Basics"},
		{Title: "Linux Networking"},
	}))
}
