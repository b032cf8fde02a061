package handlers

import (
	"errors"
	"net/http"

	request "ipfiling/internal/adapter/http/dto/request"
	response "ipfiling/internal/adapter/http/dto/response"
	"ipfiling/internal/adapter/http/middleware"
	"ipfiling/internal/usecase"
	"ipfiling/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidCallbackPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles gateway confirmation callbacks and the staff
// lookups over their results.
type PaymentHandler struct {
	usecase usecase.IPaymentConfirmationUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentConfirmationUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// VerifyPayment verifies a callback signature and reconciles the payment.
//
// Once the signature verifies the answer is 200, even when capture fails:
// the gateway must not retry a charge because of a store error.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[payment][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidCallbackPayload.HTTPStatus, errInvalidCallbackPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	result, err := h.usecase.Confirm(c.Request.Context(), usecase.ConfirmPaymentCommand{
		OrderRef:           payload.OrderRef,
		PaymentRef:         payload.PaymentRef,
		Signature:          payload.Signature,
		UserID:             payload.ResolveUserID(actor.UserID),
		ServiceID:          payload.ServiceID,
		DeclaredPrice:      payload.DeclaredPrice,
		GatewayAmountMinor: payload.Amount,
		FormData:           payload.FormData,
		CartLines:          payload.CartLines,
		Type:               payload.Type,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.Warn("[payment][handler] verify rejected",
			zap.String("order_ref", payload.OrderRef),
			zap.String("payment_ref", payload.PaymentRef),
			zap.String("code", appErr.Code),
		)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmation(result))
}

// GetPayment returns the canonical payment row for a gateway transaction.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListPaymentOrders returns the orders generated from a payment.
func (h *PaymentHandler) ListPaymentOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrdersByPayment(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCallbackFields), errors.Is(err, usecase.ErrInvalidProviderTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureSecretMissing):
		return pkg.NewDomainError("CONFIGURATION_ERROR", "Payment verification is not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
