package handlers

import (
	"errors"
	"net/http"

	"trimly/models"
	"trimly/services/payment"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment initiation, the checkout page and the
// provider callbacks.
type PaymentHandler struct {
	Coordinator *payment.Coordinator
	Logger      *zap.Logger
}

func NewPaymentHandler(coordinator *payment.Coordinator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Coordinator: coordinator, Logger: logger}
}

// PayWithKlarna creates a checkout order for a booking.
func (h *PaymentHandler) PayWithKlarna(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Coordinator.CreateOrder(c.Request.Context(), req)
	if err != nil {
		var upstream *payment.UpstreamError
		if errors.As(err, &upstream) {
			utils.JSONError(c, http.StatusBadGateway, "payment provider error", upstream.Body)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create order", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "klarna_order_created",
		"order_id":     result.OrderID,
		"redirect_url": result.RedirectURL,
	})
}

const checkoutNotFoundPage = `<!DOCTYPE html>
<html><head><title>Checkout</title></head>
<body><h1>Order not found</h1><p>This checkout link is no longer valid. Please start a new booking.</p></body></html>`

// Checkout renders the cached checkout artifact for an order; unknown order
// ids get a not-found page.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	orderID := c.Query("order_id")
	snippet, ok := h.Coordinator.CheckoutHTML(orderID)
	if !ok {
		h.Logger.Warn("checkout requested for unknown order", zap.String("order", orderID))
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(checkoutNotFoundPage))
		return
	}

	page := `<!DOCTYPE html><html><head><title>Checkout</title></head><body>` + snippet + `</body></html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Confirmation marks the order's booking paid and sends the payer back to
// the chat UI with a success flag.
func (h *PaymentHandler) Confirmation(c *gin.Context) {
	orderID := c.Query("order_id")
	h.Coordinator.Confirm(orderID)
	c.Redirect(http.StatusFound, "/?payment=success")
}

// Push acknowledges the provider's asynchronous notification. Klarna
// retries on non-2xx, so this endpoint answers 200 no matter what the body
// or order id looks like; the booking side effect is best-effort.
func (h *PaymentHandler) Push(c *gin.Context) {
	orderID := c.Query("order_id")
	body, err := c.GetRawData()
	if err != nil {
		h.Logger.Warn("failed to read push body", zap.Error(err))
	}
	h.Coordinator.HandlePush(orderID, body)
	c.JSON(http.StatusOK, gin.H{"status": "received", "order_id": orderID})
}
