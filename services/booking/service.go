package booking

import (
	"errors"
	"time"

	"trimly/models"
	"trimly/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the reservation protocol over the in-memory stores.
// The inventory's Reserve is the linearization point: the availability
// check and the removal happen under one lock, so a concurrent booking for
// the same slot is rejected rather than double-booked.
type Service struct {
	Inventory *store.Inventory
	Bookings  *store.Bookings
	Logger    *zap.Logger
}

func NewService(inv *store.Inventory, bookings *store.Bookings, logger *zap.Logger) *Service {
	return &Service{Inventory: inv, Bookings: bookings, Logger: logger}
}

// Create reserves the intent's slot and stores a pending booking. On a taken
// slot it returns store.SlotUnavailableError carrying the date's remaining
// free times.
func (s *Service) Create(intent models.BookingIntent) (*models.Booking, error) {
	if err := s.Inventory.Reserve(intent.Date, intent.Time); err != nil {
		var unavailable *store.SlotUnavailableError
		if errors.As(err, &unavailable) {
			s.Logger.Info("slot unavailable",
				zap.String("date", intent.Date),
				zap.String("time", intent.Time),
				zap.Strings("alternatives", unavailable.Available))
		}
		return nil, err
	}

	b := models.Booking{
		ID:           uuid.New().String(),
		Service:      intent.Service,
		CustomerName: intent.CustomerName,
		Date:         intent.Date,
		Time:         intent.Time,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}
	s.Bookings.Put(b)

	s.Logger.Info("booking reserved",
		zap.String("booking", b.ID),
		zap.String("date", b.Date),
		zap.String("time", b.Time))
	return &b, nil
}

// Confirm moves a booking from pending to confirmed.
func (s *Service) Confirm(id string) error {
	return s.Bookings.SetStatus(id, models.StatusConfirmed)
}

// MarkPaid moves a booking to paid (from pending or confirmed).
func (s *Service) MarkPaid(id string) error {
	return s.Bookings.SetStatus(id, models.StatusPaid)
}

// Cancel releases the booking's exact (date, time) back to the inventory
// and removes the record. Unknown ids fail with store.NotFoundError.
func (s *Service) Cancel(id string) error {
	b, ok := s.Bookings.Get(id)
	if !ok {
		return &store.NotFoundError{Kind: "booking", ID: id}
	}
	s.Bookings.Delete(id)
	s.Inventory.Release(b.Date, b.Time)

	s.Logger.Info("booking cancelled",
		zap.String("booking", id),
		zap.String("date", b.Date),
		zap.String("time", b.Time))
	return nil
}

// Get returns a booking by id.
func (s *Service) Get(id string) (models.Booking, bool) {
	return s.Bookings.Get(id)
}

// List returns every booking, oldest first.
func (s *Service) List() []models.Booking {
	return s.Bookings.All()
}
