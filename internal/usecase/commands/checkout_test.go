//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"labforge/internal/pkg/clock"
	"labforge/internal/usecase/commands"
	"labforge/internal/usecase/shared"
	"labforge/tests/common/builder"
	commandsmock "labforge/tests/mock/commands"
	queriesmock "labforge/tests/mock/queries"
	sharedmock "labforge/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockQuotes       *queriesmock.MockQuoteQueries
	mockEntitlements *sharedmock.MockEntitlementReadStore
	mockGateway      *commandsmock.MockCheckoutGateway
	mockUoW          *sharedmock.MockUnitOfWork
	mockTx           *sharedmock.MockTx
	mockOrders       *sharedmock.MockOrderRepository
	mockEntRepo      *sharedmock.MockEntitlementRepository
	clock            *clock.MockClock
	commands         commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.ctrl)
	s.mockEntitlements = sharedmock.NewMockEntitlementReadStore(s.ctrl)
	s.mockGateway = commandsmock.NewMockCheckoutGateway(s.ctrl)
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.mockTx = sharedmock.NewMockTx(s.ctrl)
	s.mockOrders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.mockEntRepo = sharedmock.NewMockEntitlementRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewCheckoutCommands(
		s.mockQuotes,
		s.mockEntitlements,
		s.mockGateway,
		s.mockUoW,
		s.clock,
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

// runWithin makes the UoW mock execute the transactional closure against the
// suite's Tx mock, the way the real pgx implementation would.
func (s *CheckoutCommandsTestSuite) runWithin() *gomock.Call {
	return s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func (s *CheckoutCommandsTestSuite) TestCreateCheckoutSession() {
	ctx := context.Background()

	s.Run("success: opens a session for the quoted final amount", func() {
		b := builder.NewQuoteBuilder().WithCoupon("WELCOME10", 490)
		view := b.BuildView()
		labID := b.LabIDs[0]
		code := "WELCOME10"

		s.mockEntitlements.EXPECT().HasActive(gomock.Any(), b.UserID, labID).Return(false, nil)
		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, []uuid.UUID{labID}, "USD", &code).Return(view, nil)
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSessionRedirect, error) {
				s.Equal(b.UserID, req.UserID)
				s.Equal([]uuid.UUID{labID}, req.LabIDs)
				s.Equal("USD", req.Currency)
				s.Equal("WELCOME10", req.CouponCode)
				s.Equal(view.OriginalAmountCents, req.OriginalAmountCents)
				s.Equal(view.DiscountCents, req.DiscountCents)
				s.Equal(view.FinalAmountCents, req.FinalAmountCents)
				return &commands.CheckoutSessionRedirect{SessionID: "cs_test_123", URL: "https://checkout.example/cs_test_123"}, nil
			})

		result, err := s.commands.CreateCheckoutSession(ctx, b.UserID, labID, "USD", &code)
		s.Require().NoError(err)
		s.Equal("https://checkout.example/cs_test_123", result.URL)
		s.Equal(view.FinalAmountCents, result.FinalAmountCents)
		s.Equal(view.DiscountCents, result.DiscountCents)
		s.Equal("USD", result.Currency)
	})

	s.Run("error: already entitled", func() {
		b := builder.NewQuoteBuilder()
		labID := b.LabIDs[0]

		s.mockEntitlements.EXPECT().HasActive(gomock.Any(), b.UserID, labID).Return(true, nil)

		_, err := s.commands.CreateCheckoutSession(ctx, b.UserID, labID, "USD", nil)
		s.ErrorIs(err, commands.ErrAlreadyEntitled)
	})

	s.Run("error: zero-amount cart must use the free path", func() {
		b := builder.NewQuoteBuilder().WithCoupon("FREEBIE", 4900)
		view := b.BuildView()
		labID := b.LabIDs[0]
		code := "FREEBIE"

		s.mockEntitlements.EXPECT().HasActive(gomock.Any(), b.UserID, labID).Return(false, nil)
		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, []uuid.UUID{labID}, "USD", &code).Return(view, nil)

		_, err := s.commands.CreateCheckoutSession(ctx, b.UserID, labID, "USD", &code)
		s.ErrorIs(err, commands.ErrFreeAccessOnly)
	})

	s.Run("error: gateway failure is marked", func() {
		b := builder.NewQuoteBuilder()
		view := b.BuildView()
		labID := b.LabIDs[0]

		s.mockEntitlements.EXPECT().HasActive(gomock.Any(), b.UserID, labID).Return(false, nil)
		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, []uuid.UUID{labID}, "USD", nil).Return(view, nil)
		s.mockGateway.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("processor 502"))

		_, err := s.commands.CreateCheckoutSession(ctx, b.UserID, labID, "USD", nil)
		s.ErrorIs(err, commands.ErrPaymentGateway)
	})

	s.Run("error: quote failure propagates untouched", func() {
		b := builder.NewQuoteBuilder()
		labID := b.LabIDs[0]
		quoteErr := errors.New("lab not found")

		s.mockEntitlements.EXPECT().HasActive(gomock.Any(), b.UserID, labID).Return(false, nil)
		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, []uuid.UUID{labID}, "USD", nil).Return(nil, quoteErr)

		_, err := s.commands.CreateCheckoutSession(ctx, b.UserID, labID, "USD", nil)
		s.ErrorIs(err, quoteErr)
	})
}

func (s *CheckoutCommandsTestSuite) TestGrantFreeAccess() {
	ctx := context.Background()

	s.Run("success: grants entitlements and records a paid zero order", func() {
		b := builder.NewQuoteBuilder().WithLabs(2).WithCoupon("FREEBIE", 2*4900)
		view := b.BuildView()
		code := "FREEBIE"

		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, b.LabIDs, "USD", &code).Return(view, nil)
		s.runWithin()
		s.mockTx.EXPECT().Orders().Return(s.mockOrders)
		s.mockOrders.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *shared.OrderRecord) error {
				s.Contains(rec.SessionID, "free_")
				s.Equal("paid", rec.Status)
				s.Equal(int64(0), rec.AmountCents)
				s.Equal(b.UserID, rec.UserID)
				s.Equal(b.LabIDs[0], rec.LabID)
				s.Equal(b.LabIDs, rec.Metadata.LabIDs)
				s.Equal(2, rec.Metadata.LabCount)
				return nil
			})
		s.mockTx.EXPECT().Entitlements().Return(s.mockEntRepo).Times(2)
		for _, labID := range b.LabIDs {
			s.mockEntRepo.EXPECT().UpsertActive(gomock.Any(), b.UserID, labID, "free").Return(nil)
		}

		result, err := s.commands.GrantFreeAccess(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.Require().NoError(err)
		s.Equal(b.LabIDs, result.GrantedLabIDs)
	})

	s.Run("error: cart with a balance due is rejected", func() {
		b := builder.NewQuoteBuilder()
		view := b.BuildView()

		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, b.LabIDs, "USD", nil).Return(view, nil)

		_, err := s.commands.GrantFreeAccess(ctx, b.UserID, b.LabIDs, "USD", nil)
		s.ErrorIs(err, commands.ErrCartNotFree)
	})

	s.Run("error: persistence failure is marked retryable", func() {
		b := builder.NewQuoteBuilder().WithCoupon("FREEBIE", 4900)
		view := b.BuildView()
		code := "FREEBIE"

		s.mockQuotes.EXPECT().BuildQuote(gomock.Any(), b.UserID, b.LabIDs, "USD", &code).Return(view, nil)
		s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))

		_, err := s.commands.GrantFreeAccess(ctx, b.UserID, b.LabIDs, "USD", &code)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
