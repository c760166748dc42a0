package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"trimly/models"
	"trimly/services/booking"
	"trimly/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// snippetMarker is the container element every granted Klarna checkout
// snippet embeds. A response without it means the artifact was rejected and
// the hosted checkout must be used instead.
const snippetMarker = "klarna-checkout-container"

// Coordinator drives a payment order through created -> paid. It caches the
// checkout artifact for the process lifetime, records which booking each
// order pays for, and advances that booking on confirmation or push.
type Coordinator struct {
	Client    CheckoutClient
	Orders    *store.Orders
	Bookings  *booking.Service
	PublicURL string
	Logger    *zap.Logger
}

func NewCoordinator(client CheckoutClient, orders *store.Orders, bookings *booking.Service, publicURL string, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		Client:    client,
		Orders:    orders,
		Bookings:  bookings,
		PublicURL: publicURL,
		Logger:    logger,
	}
}

// CreateOrder creates a checkout order with the provider, caches its
// artifact and returns the redirect target. A non-2xx provider answer is
// fatal to this request and surfaces as UpstreamError; there is no
// automatic retry.
func (c *Coordinator) CreateOrder(ctx context.Context, req models.PaymentRequest) (*models.OrderResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	order, err := c.Client.CreateOrder(ctx, OrderParams{
		AmountMinor:  int64(math.Round(req.Amount * 100)),
		Service:      req.Service,
		CustomerName: req.CustomerName,
		Reference:    uuid.New().String(),
	})
	if err != nil {
		c.Logger.Error("klarna order creation failed", zap.Error(err))
		return nil, err
	}

	redirect := c.PublicURL + "/checkout?order_id=" + order.OrderID
	snippet := order.HTMLSnippet
	if !snippetGranted(snippet) {
		// Artifact rejected: send the payer to the hosted checkout and keep
		// a link stub so our own checkout page still renders something.
		if order.RedirectURL != "" {
			redirect = order.RedirectURL
		}
		snippet = fmt.Sprintf(`<p>Complete your payment at <a href="%s">Klarna checkout</a>.</p>`, redirect)
		c.Logger.Warn("checkout snippet rejected, using hosted checkout",
			zap.String("order", order.OrderID))
	}

	c.Orders.PutArtifact(order.OrderID, snippet)
	if req.BookingID != "" {
		c.Orders.Link(order.OrderID, req.BookingID)
	}

	c.Logger.Info("klarna order created",
		zap.String("order", order.OrderID),
		zap.String("booking", req.BookingID),
		zap.Float64("amount", req.Amount))
	return &models.OrderResult{OrderID: order.OrderID, RedirectURL: redirect}, nil
}

// CheckoutHTML returns the cached artifact for an order. An unknown order
// id is the abandoned state: the caller renders not-found, nothing advances.
func (c *Coordinator) CheckoutHTML(orderID string) (string, bool) {
	return c.Orders.Artifact(orderID)
}

// HandlePush records an asynchronous push notification. The only contract
// is acknowledgement: the booking side effect is best-effort and must never
// block it, so all failures end up as log lines.
func (c *Coordinator) HandlePush(orderID string, body []byte) {
	c.Logger.Info("klarna push received",
		zap.String("order", orderID),
		zap.ByteString("body", body))
	c.markPaid(orderID)
}

// Confirm advances the order's booking to paid when the payer lands on the
// confirmation URL.
func (c *Coordinator) Confirm(orderID string) {
	c.markPaid(orderID)
}

func (c *Coordinator) markPaid(orderID string) {
	if orderID == "" {
		return
	}
	bookingID, ok := c.Orders.BookingFor(orderID)
	if !ok {
		c.Logger.Warn("no booking linked to order", zap.String("order", orderID))
		return
	}
	if err := c.Bookings.MarkPaid(bookingID); err != nil {
		c.Logger.Warn("failed to mark booking paid",
			zap.String("order", orderID),
			zap.String("booking", bookingID),
			zap.Error(err))
		return
	}
	c.Logger.Info("booking paid",
		zap.String("order", orderID),
		zap.String("booking", bookingID))
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.Service == "" {
		return errors.New("missing service")
	}
	if req.CustomerName == "" {
		return errors.New("missing customer name")
	}
	return nil
}

func snippetGranted(snippet string) bool {
	return snippet != "" && strings.Contains(snippet, snippetMarker)
}
