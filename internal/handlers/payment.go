package handlers

import (
	"errors"

	"dzpay/internal/events"
	"dzpay/internal/models"
	"dzpay/internal/services/gateway"
	"dzpay/internal/utils/response"
	"dzpay/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	gateway gateway.Service
}

func NewPaymentHandler(gatewaySvc gateway.Service) *PaymentHandler {
	if gatewaySvc == nil {
		panic("gateway service is required")
	}
	return &PaymentHandler{gateway: gatewaySvc}
}

// InitiatePayment opens a transaction on the requested rail and returns
// the customer-facing instructions.
func (h *PaymentHandler) InitiatePayment(c *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	v := validation.New()
	v.Payment(&req)
	if !v.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  v.Errors,
		})
	}

	result, err := h.gateway.InitiatePayment(c.Context(), req)
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Payment initiated", result)
}

// VerifyPayment applies verification data to a pending transaction.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var req models.VerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.gateway.VerifyPayment(c.Context(), c.Params("id"), req)
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Payment verification processed", result)
}

// ConfirmPayment is the admin approval/rejection of a reviewed transaction.
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	var input struct {
		Confirmed bool   `json:"confirmed"`
		Notes     string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.gateway.ConfirmManualPayment(c.Context(), c.Params("id"), input.Confirmed, input.Notes)
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Payment confirmation processed", result)
}

func (h *PaymentHandler) GetTransaction(c *fiber.Ctx) error {
	tx, err := h.gateway.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Transaction found", tx)
}

func (h *PaymentHandler) GetOrderTransactions(c *fiber.Ctx) error {
	txs, err := h.gateway.GetOrderTransactions(c.Context(), c.Params("orderId"))
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Order transactions", txs)
}

func (h *PaymentHandler) GetPaymentMethods(c *fiber.Ctx) error {
	return response.Success(c, "Payment methods", h.gateway.GetPaymentMethods())
}

// HandleWebhook accepts an inbound provider notification for one rail.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	method := models.Method(c.Params("method"))
	if !method.Valid() {
		return response.BadRequest(c, "Unsupported payment method")
	}

	var payload events.Payload
	if err := c.BodyParser(&payload); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	h.gateway.HandleWebhook(method, payload)
	return response.Success(c, "Webhook accepted", nil)
}

func (h *PaymentHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.gateway.Stats(c.Context())
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Payment stats", stats)
}

func (h *PaymentHandler) ExportTransactions(c *fiber.Ctx) error {
	data, err := h.gateway.ExportTransactions(c.Context())
	if err != nil {
		return paymentError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

func (h *PaymentHandler) ImportTransactions(c *fiber.Ctx) error {
	count, err := h.gateway.ImportTransactions(c.Context(), c.Body())
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Transactions imported", fiber.Map{"count": count})
}

// paymentError maps gateway sentinel errors onto HTTP statuses.
func paymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gateway.ErrTransactionNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, gateway.ErrUnsupportedMethod),
		errors.Is(err, gateway.ErrInvalidPaymentData),
		errors.Is(err, gateway.ErrInvalidVerificationCode),
		errors.Is(err, gateway.ErrTransactionExpired),
		errors.Is(err, gateway.ErrInvalidStatus):
		return response.BadRequest(c, err.Error())
	default:
		return response.ServerError(c, err.Error())
	}
}
