package store

import (
	"sort"
	"sync"

	"trimly/models"
)

// Bookings holds booking records keyed by identifier behind a mutex.
type Bookings struct {
	mu      sync.Mutex
	records map[string]models.Booking
}

func NewBookings() *Bookings {
	return &Bookings{records: make(map[string]models.Booking)}
}

// Put stores (or replaces) a booking record.
func (s *Bookings) Put(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[b.ID] = b
}

// Get returns a copy of the booking with the given id.
func (s *Bookings) Get(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.records[id]
	return b, ok
}

// All returns a snapshot of every booking, ordered by creation time.
func (s *Bookings) All() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0, len(s.records))
	for _, b := range s.records {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Delete removes a booking record; deleting an absent id is a no-op.
func (s *Bookings) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// SetStatus applies a status transition. Allowed moves are
// pending->confirmed, pending->paid and confirmed->paid; setting a booking
// to the status it already has is an idempotent no-op. Anything else fails
// with InvalidTransitionError; unknown ids fail with NotFoundError.
func (s *Bookings) SetStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.records[id]
	if !ok {
		return &NotFoundError{Kind: "booking", ID: id}
	}
	if b.Status == status {
		return nil
	}
	if !transitionAllowed(b.Status, status) {
		return &InvalidTransitionError{ID: id, From: b.Status, To: status}
	}
	b.Status = status
	s.records[id] = b
	return nil
}

func transitionAllowed(from, to string) bool {
	switch {
	case from == models.StatusPending && to == models.StatusConfirmed:
		return true
	case from == models.StatusPending && to == models.StatusPaid:
		return true
	case from == models.StatusConfirmed && to == models.StatusPaid:
		return true
	}
	return false
}
