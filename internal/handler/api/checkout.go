package api

import (
	"errors"
	"net/http"

	reqdto "labforge/internal/handler/dto/request"
	resdto "labforge/internal/handler/dto/response"
	"labforge/internal/handler/httperr"
	"labforge/internal/handler/middleware"
	"labforge/internal/pkg/errs"
	"labforge/internal/usecase/commands"
	"labforge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.QuoteQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.QuoteQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Build quote
// @Description Price a lab selection for the current user, applying an optional coupon
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/quote [post]
func (h *CheckoutHandler) BuildQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.BuildQuote(c.Request.Context(), userID, req.LabIDs, req.Currency, req.GetCouponCode())
	if err != nil {
		h.abortQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create checkout session
// @Description Open a hosted payment session for a single lab
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSessionRequest true "Session request"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout/session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateCheckoutSession(c.Request.Context(), userID, req.LabID, req.Currency, req.GetCouponCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyEntitled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lab access already granted", nil)
		case errors.Is(err, commands.ErrFreeAccessOnly):
			httperr.AbortWithError(c, http.StatusConflict, err, "Amount due is zero, use the free access endpoint", nil)
		case errors.Is(err, commands.ErrPaymentGateway):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment provider is unavailable", nil)
		default:
			h.abortQuoteError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutSessionResult(result))
}

// @Summary Grant free access
// @Description Grant access directly when the quoted amount is zero
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FreeAccessRequest true "Free access request"
// @Success 201 {object} resdto.FreeAccessResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/free [post]
func (h *CheckoutHandler) GrantFreeAccess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.FreeAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.GrantFreeAccess(c.Request.Context(), userID, req.LabIDs, req.Currency, req.GetCouponCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartNotFree):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart total is not zero", nil)
		case errors.Is(err, commands.ErrDatabaseOperationFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		default:
			h.abortQuoteError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFreeAccessResult(result))
}

func (h *CheckoutHandler) abortQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrEmptyLabSelection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No labs selected", nil)
	case errors.Is(err, queries.ErrUnsupportedCurrency):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported currency", nil)
	case errors.Is(err, queries.ErrLabNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Lab not found", nil)
	case errors.Is(err, queries.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, queries.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon", nil)
	case errors.Is(err, queries.ErrNoActivePrice):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No active price for one of the selected labs", nil)
	case errors.Is(err, queries.ErrNothingToPurchase):
		httperr.AbortWithError(c, http.StatusConflict, err, "All selected labs are already owned", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
