//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"labforge/internal/domain/catalog"
	"labforge/internal/domain/coupon"
	"labforge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCurrency(t *testing.T, code string) catalog.Currency {
	t.Helper()
	cur, err := catalog.NewCurrency(code)
	require.NoError(t, err)
	return cur
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "WELCOME10", c.Code().String())
		assert.True(t, c.Discount().IsPercentage())
		assert.True(t, c.Active())
	})

	t.Run("code is canonicalized to uppercase", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithCode("  welcome10 ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "WELCOME10", c.Code().String())
	})

	t.Run("invalid code format", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithCode("x!").BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithPercentOff(0).BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)

		_, err = builder.NewCouponBuilder().WithPercentOff(100.01).BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
	})

	t.Run("non-positive fixed amount", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().WithAmountOff(0, "USD").BuildDomain()
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)
	})
}

func TestDiscountFor(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	usd := mustCurrency(t, "USD")

	cart := func(amounts ...int64) []coupon.PricedItem {
		items := make([]coupon.PricedItem, len(amounts))
		for i, a := range amounts {
			items[i] = coupon.PricedItem{LabID: uuid.New(), AmountCents: a}
		}
		return items
	}

	t.Run("percentage rounds half up", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercentOff(10).BuildDomain()
		require.NoError(t, err)

		// 10% of 1005 = 100.5, rounds to 101
		got, err := c.DiscountFor(now, usd, cart(1005))
		require.NoError(t, err)
		assert.Equal(t, int64(101), got)

		// 10% of 1004 = 100.4, rounds to 100
		got, err = c.DiscountFor(now, usd, cart(1004))
		require.NoError(t, err)
		assert.Equal(t, int64(100), got)
	})

	t.Run("100 percent yields the full subtotal", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercentOff(100).BuildDomain()
		require.NoError(t, err)

		got, err := c.DiscountFor(now, usd, cart(4900))
		require.NoError(t, err)
		assert.Equal(t, int64(4900), got)
	})

	t.Run("fixed discount is clamped to the subtotal", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithAmountOff(10000, "USD").BuildDomain()
		require.NoError(t, err)

		got, err := c.DiscountFor(now, usd, cart(4900))
		require.NoError(t, err)
		assert.Equal(t, int64(4900), got)
	})

	t.Run("fixed discount requires matching currency", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithAmountOff(500, "EUR").BuildDomain()
		require.NoError(t, err)

		_, err = c.DiscountFor(now, usd, cart(4900))
		assert.ErrorIs(t, err, coupon.ErrCouponCurrencyMismatch)
	})

	t.Run("percentage discount is currency agnostic", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercentOff(50).BuildDomain()
		require.NoError(t, err)

		got, err := c.DiscountFor(now, mustCurrency(t, "EUR"), cart(1000))
		require.NoError(t, err)
		assert.Equal(t, int64(500), got)
	})

	t.Run("inactive coupon is rejected", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().Inactive().BuildDomain()
		require.NoError(t, err)

		_, err = c.DiscountFor(now, usd, cart(4900))
		assert.ErrorIs(t, err, coupon.ErrCouponInactive)
	})

	t.Run("expiry is exclusive at the boundary", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithExpiry(now).BuildDomain()
		require.NoError(t, err)

		// expiresAt == now counts as expired
		_, err = c.DiscountFor(now, usd, cart(4900))
		assert.ErrorIs(t, err, coupon.ErrCouponExpired)

		c, err = builder.NewCouponBuilder().WithExpiry(now.Add(time.Second)).BuildDomain()
		require.NoError(t, err)
		_, err = c.DiscountFor(now, usd, cart(4900))
		assert.NoError(t, err)
	})

	t.Run("lab restriction discounts only the matching lines", func(t *testing.T) {
		labID := uuid.New()
		c, err := builder.NewCouponBuilder().WithPercentOff(50).WithLabRestriction(labID).BuildDomain()
		require.NoError(t, err)

		items := []coupon.PricedItem{
			{LabID: labID, AmountCents: 2000},
			{LabID: uuid.New(), AmountCents: 3000},
		}
		got, err := c.DiscountFor(now, usd, items)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), got)
	})

	t.Run("lab restriction with no matching line is not applicable", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithLabRestriction(uuid.New()).BuildDomain()
		require.NoError(t, err)

		_, err = c.DiscountFor(now, usd, cart(2000, 3000))
		assert.ErrorIs(t, err, coupon.ErrCouponNotApplicable)
	})

	t.Run("empty cart yields zero discount", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		got, err := c.DiscountFor(now, usd, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})
}
