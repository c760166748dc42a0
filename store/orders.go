package store

import "sync"

// Orders caches checkout artifacts keyed by order id for the lifetime of
// the process, and records the order -> booking association made at payment
// initiation. Entries are never evicted; the catalog is small and the
// process is the unit of retention.
type Orders struct {
	mu        sync.Mutex
	artifacts map[string]string
	bookings  map[string]string
}

func NewOrders() *Orders {
	return &Orders{
		artifacts: make(map[string]string),
		bookings:  make(map[string]string),
	}
}

// PutArtifact caches the renderable checkout content for an order.
func (s *Orders) PutArtifact(orderID, html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[orderID] = html
}

// Artifact returns the cached checkout content for an order.
func (s *Orders) Artifact(orderID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	html, ok := s.artifacts[orderID]
	return html, ok
}

// Link associates an order with the booking it pays for.
func (s *Orders) Link(orderID, bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[orderID] = bookingID
}

// BookingFor returns the booking an order pays for, if one was linked.
func (s *Orders) BookingFor(orderID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.bookings[orderID]
	return id, ok
}
