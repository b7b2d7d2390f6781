//go:build unit

package queries_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"labforge/internal/domain/catalog"
	"labforge/internal/infra"
	"labforge/internal/pkg/clock"
	"labforge/internal/usecase/queries"
	"labforge/internal/usecase/shared"
	"labforge/tests/common/builder"
	sharedmock "labforge/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteQueriesTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockLabs         *sharedmock.MockLabReadStore
	mockPrices       *sharedmock.MockPriceReadStore
	mockCoupons      *sharedmock.MockCouponReadStore
	mockEntitlements *sharedmock.MockEntitlementReadStore
	clock            *clock.MockClock
	queries          queries.QuoteQueries
}

func (s *QuoteQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLabs = sharedmock.NewMockLabReadStore(s.ctrl)
	s.mockPrices = sharedmock.NewMockPriceReadStore(s.ctrl)
	s.mockCoupons = sharedmock.NewMockCouponReadStore(s.ctrl)
	s.mockEntitlements = sharedmock.NewMockEntitlementReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	supported, err := catalog.NewSupportedCurrencies([]string{"USD", "EUR"})
	require.NoError(s.T(), err)

	s.queries = queries.NewQuoteQueries(
		s.mockLabs,
		s.mockPrices,
		s.mockCoupons,
		s.mockEntitlements,
		supported,
		s.clock,
	)
}

func (s *QuoteQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQuoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueriesTestSuite))
}

func (s *QuoteQueriesTestSuite) TestBuildQuote() {
	ctx := context.Background()

	s.Run("success: prices a single lab", func() {
		b := builder.NewQuoteBuilder()

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)

		view, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.Require().NoError(err)
		s.Equal("USD", view.Currency)
		s.Len(view.Items, 1)
		s.Equal(int64(4900), view.OriginalAmountCents)
		s.Equal(int64(4900), view.FinalAmountCents)
		s.Equal(int64(0), view.DiscountCents)
		s.False(view.CouponApplied)
		s.False(view.FreeAccess)
	})

	s.Run("success: duplicate lab ids collapse to one line", func() {
		b := builder.NewQuoteBuilder()
		duplicated := []uuid.UUID{b.LabIDs[0], b.LabIDs[0], b.LabIDs[0]}

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)

		view, err := s.queries.BuildQuote(ctx, b.UserID, duplicated, "USD", nil)
		s.Require().NoError(err)
		s.Len(view.Items, 1)
		s.Equal(int64(4900), view.OriginalAmountCents)
	})

	s.Run("success: owned labs are excluded from the total", func() {
		b := builder.NewQuoteBuilder().WithLabs(3)

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(b.LabIDs[:1], nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)

		view, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.Require().NoError(err)
		s.Len(view.Items, 2)
		s.Equal(int64(2*4900), view.OriginalAmountCents)
	})

	s.Run("success: repeated quote for the same cart is identical", func() {
		b := builder.NewQuoteBuilder().WithLabs(2)

		for i := 0; i < 2; i++ {
			s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
			s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
			s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		}

		first, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.Require().NoError(err)
		second, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.Require().NoError(err)
		s.Equal(first, second)
	})

	s.Run("success: coupon reduces the total and marks freeAccess at zero", func() {
		b := builder.NewQuoteBuilder()
		snap := builder.NewCouponBuilder().WithPercentOff(100).BuildSnapshot()
		code := snap.Code

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		view, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.Require().NoError(err)
		s.True(view.CouponApplied)
		s.Equal(snap.Code, view.CouponCode)
		s.Equal(int64(4900), view.DiscountCents)
		s.Equal(int64(0), view.FinalAmountCents)
		s.True(view.FreeAccess)
	})

	s.Run("success: submitted coupon code is canonicalized before lookup", func() {
		b := builder.NewQuoteBuilder()
		snap := builder.NewCouponBuilder().WithPercentOff(10).BuildSnapshot()
		lower := "welcome10"

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), "WELCOME10").Return(snap, nil)

		view, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &lower)
		s.Require().NoError(err)
		s.Equal("WELCOME10", view.CouponCode)
		s.Equal(int64(490), view.DiscountCents)
	})

	s.Run("error: empty selection", func() {
		_, err := s.queries.BuildQuote(ctx, uuid.New(), nil, "USD", nil)
		s.ErrorIs(err, queries.ErrEmptyLabSelection)

		_, err = s.queries.BuildQuote(ctx, uuid.New(), []uuid.UUID{uuid.Nil}, "USD", nil)
		s.ErrorIs(err, queries.ErrEmptyLabSelection)
	})

	s.Run("error: unsupported currency", func() {
		_, err := s.queries.BuildQuote(ctx, uuid.New(), []uuid.UUID{uuid.New()}, "JPY", nil)
		s.ErrorIs(err, queries.ErrUnsupportedCurrency)

		_, err = s.queries.BuildQuote(ctx, uuid.New(), []uuid.UUID{uuid.New()}, "dollars", nil)
		s.ErrorIs(err, queries.ErrUnsupportedCurrency)
	})

	s.Run("error: unknown lab id fails the whole quote", func() {
		b := builder.NewQuoteBuilder().WithLabs(2)

		// Store returns only the first lab.
		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots()[:1], nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.ErrorIs(err, queries.ErrLabNotFound)
	})

	s.Run("error: blank lab title fails the whole quote", func() {
		b := builder.NewQuoteBuilder()
		rows := []shared.LabSnapshot{{ID: b.LabIDs[0], Title: "  "}}

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(rows, nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.ErrorIs(err, catalog.ErrEmptyLabTitle)
	})

	s.Run("error: one unpriced lab fails the whole quote", func() {
		b := builder.NewQuoteBuilder().WithLabs(2)

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots()[:1], nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.ErrorIs(err, queries.ErrNoActivePrice)
	})

	s.Run("error: everything already owned", func() {
		b := builder.NewQuoteBuilder().WithLabs(2)

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(b.LabIDs, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.ErrorIs(err, queries.ErrNothingToPurchase)
	})

	s.Run("error: coupon not found", func() {
		b := builder.NewQuoteBuilder()
		code := "NOPE42"

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), code).
			Return(nil, infra.WrapRepoErr("coupon not found", sql.ErrNoRows, infra.KindNotFound))

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.ErrorIs(err, queries.ErrCouponNotFound)
	})

	s.Run("error: coupon store failure is not treated as missing", func() {
		b := builder.NewQuoteBuilder()
		code := "WELCOME10"

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), code).
			Return(nil, infra.WrapRepoErr("failed to find coupon by code", errors.New("connection reset")))

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.Require().Error(err)
		s.NotErrorIs(err, queries.ErrCouponNotFound)
	})

	s.Run("error: expired coupon is invalid", func() {
		b := builder.NewQuoteBuilder()
		expired := s.clock.Now().Add(-time.Hour)
		snap := builder.NewCouponBuilder().WithExpiry(expired).BuildSnapshot()
		code := snap.Code

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.ErrorIs(err, queries.ErrInvalidCoupon)
	})

	s.Run("error: malformed coupon code is invalid without a lookup", func() {
		b := builder.NewQuoteBuilder()
		code := "x!"

		s.mockLabs.EXPECT().FindByIDs(gomock.Any(), b.LabIDs).Return(b.BuildLabSnapshots(), nil)
		s.mockEntitlements.EXPECT().ActiveLabIDs(gomock.Any(), b.UserID, b.LabIDs).Return(nil, nil)
		s.mockPrices.EXPECT().ActiveByLabs(gomock.Any(), b.LabIDs).Return(b.BuildPriceSnapshots(), nil)

		_, err := s.queries.BuildQuote(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.ErrorIs(err, queries.ErrInvalidCoupon)
	})
}
