//go:build unit

package order_test

import (
	"testing"
	"time"

	"labforge/internal/domain/catalog"
	"labforge/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(order.Order{}),
	cmpopts.EquateEmpty(),
}

func mustCurrency(t *testing.T, code string) catalog.Currency {
	t.Helper()
	cur, err := catalog.NewCurrency(code)
	require.NoError(t, err)
	return cur
}

func TestNew(t *testing.T) {
	userID := uuid.New()
	labID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	usd := mustCurrency(t, "USD")

	t.Run("valid order", func(t *testing.T) {
		intentID := "pi_123"
		actual, err := order.New("cs_1", &intentID, userID, []uuid.UUID{labID}, 4900, usd, "WELCOME10", order.StatusPaid, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := order.New("cs_1", &intentID, userID, []uuid.UUID{labID}, 4900, usd, "WELCOME10", order.StatusPaid, now)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Order mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, "cs_1", actual.SessionID())
		assert.Equal(t, labID, actual.PrimaryLabID())
		assert.Equal(t, int64(4900), actual.AmountCents())
		assert.Equal(t, order.StatusPaid, actual.Status())
	})

	t.Run("empty session id rejected", func(t *testing.T) {
		_, err := order.New("", nil, userID, []uuid.UUID{labID}, 4900, usd, "", order.StatusCreated, now)
		require.ErrorIs(t, err, order.ErrMissingSessionID)
	})

	t.Run("no labs rejected", func(t *testing.T) {
		_, err := order.New("cs_1", nil, userID, nil, 4900, usd, "", order.StatusCreated, now)
		require.ErrorIs(t, err, order.ErrNoLabs)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := order.New("cs_1", nil, userID, []uuid.UUID{labID}, 4900, usd, "", order.Status("refunded"), now)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("negative amount clamps to zero", func(t *testing.T) {
		actual, err := order.New("cs_1", nil, userID, []uuid.UUID{labID}, -1, usd, "", order.StatusCreated, now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.AmountCents())
	})

	t.Run("duplicate labs collapse keeping first-seen order", func(t *testing.T) {
		other := uuid.New()
		actual, err := order.New("cs_1", nil, userID, []uuid.UUID{labID, other, labID}, 9800, usd, "", order.StatusCreated, now)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{labID, other}, actual.LabIDs())
		assert.Equal(t, labID, actual.PrimaryLabID())
	})
}
