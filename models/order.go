package models

// PaymentRequest is the payload for initiating a Klarna checkout.
type PaymentRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	Service      string  `json:"service" binding:"required"`
	CustomerName string  `json:"customer_name" binding:"required"`
	// BookingID links the resulting order back to a booking so the
	// confirmation and push callbacks can advance exactly that booking.
	BookingID string `json:"booking_id"`
}

// OrderResult is returned to the caller after a checkout order was created.
type OrderResult struct {
	OrderID     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
}
