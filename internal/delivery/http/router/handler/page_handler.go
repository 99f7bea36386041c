package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"interviewlog/internal/delivery/http/response"
	"interviewlog/internal/usecase"
)

// PageHandler holds dependencies for the payment pages.
type PageHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		uc:     uc,
		logger: logger,
	}
}

type paidRequest struct {
	PaymentMethodNonce string `json:"payment_method_nonce" form:"payment_method_nonce" validate:"required"`
}

// Payment returns the gateway client token used to render the payment form.
func (h *PageHandler) Payment(c echo.Context) error {
	output, err := h.uc.ClientToken(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"client_token": output.ClientToken}, "")
}

// Paid processes the premium purchase for the logged-in user.
func (h *PageHandler) Paid(c echo.Context) error {
	userID, ok := contextUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "請先登入")
	}

	var req paidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Charge(c.Request().Context(), userID, req.PaymentMethodNonce)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"transaction_id": output.TransactionID,
		"tier":           output.Tier,
	}, "Payment completed")
}
