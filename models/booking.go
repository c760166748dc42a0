package models

import "time"

// Booking status values. Cancelled is terminal; a cancelled booking is
// removed from the store and its slot released.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Booking represents a reserved appointment.
type Booking struct {
	ID           string    `json:"id"`            // Unique booking identifier (UUID)
	Service      string    `json:"service"`       // e.g. "Haircut"
	CustomerName string    `json:"customer_name"` // Name the booking was made for
	Date         string    `json:"date"`          // "YYYY-MM-DD"
	Time         string    `json:"time"`          // "HH:MM"
	Status       string    `json:"status"`        // pending, confirmed, paid
	CreatedAt    time.Time `json:"created_at"`
}

// BookingIntent is the structured booking request inferred from free text.
// It is transient: partially populated intents produce a follow-up question
// and are never stored.
type BookingIntent struct {
	Service      string `json:"service"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// Complete reports whether every field required for a reservation is set.
// Service is defaulted upstream, so only the customer-provided fields count.
func (i BookingIntent) Complete() bool {
	return i.CustomerName != "" && i.Date != "" && i.Time != ""
}

// MissingFields lists the unset required fields in presentation order:
// name, then date, then time.
func (i BookingIntent) MissingFields() []string {
	var missing []string
	if i.CustomerName == "" {
		missing = append(missing, "your name")
	}
	if i.Date == "" {
		missing = append(missing, "the date (YYYY-MM-DD)")
	}
	if i.Time == "" {
		missing = append(missing, "the time (HH:MM)")
	}
	return missing
}
