package store

import (
	"sort"
	"sync"
)

// Inventory holds the free appointment slots per date. All operations take
// the inventory lock, so an availability check and the removal that follows
// it are a single critical section: two concurrent reservations of the same
// (date, time) cannot both succeed.
type Inventory struct {
	mu   sync.Mutex
	free map[string]map[string]struct{}
}

// NewInventory builds an inventory from a date -> times seed catalog.
func NewInventory(seed map[string][]string) *Inventory {
	inv := &Inventory{free: make(map[string]map[string]struct{})}
	for date, times := range seed {
		for _, t := range times {
			inv.addLocked(date, t)
		}
	}
	return inv
}

// DefaultCatalog is the slot catalog the service is seeded with at startup.
func DefaultCatalog() map[string][]string {
	return map[string][]string{
		"2025-09-13": {"10:00", "11:00", "14:00"},
		"2025-09-14": {"09:00", "12:00", "15:00"},
	}
}

func (inv *Inventory) addLocked(date, t string) {
	times, ok := inv.free[date]
	if !ok {
		times = make(map[string]struct{})
		inv.free[date] = times
	}
	times[t] = struct{}{}
}

// Available reports whether t is currently free on date.
func (inv *Inventory) Available(date, t string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	_, ok := inv.free[date][t]
	return ok
}

// Reserve removes t from the free set for date. It fails with
// SlotUnavailableError when the time is not free, carrying the date's
// remaining free times so the caller can offer alternatives.
func (inv *Inventory) Reserve(date, t string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.free[date][t]; !ok {
		return &SlotUnavailableError{Date: date, Time: t, Available: inv.timesLocked(date)}
	}
	delete(inv.free[date], t)
	return nil
}

// Release puts t back into the free set for date, creating the date entry
// if needed. Releasing an already-free time is a no-op: duplicate releases
// never produce duplicate entries.
func (inv *Inventory) Release(date, t string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.addLocked(date, t)
}

// Add registers a new bookable time. Catalog maintenance.
func (inv *Inventory) Add(date, t string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.addLocked(date, t)
}

// Remove withdraws a time from the catalog; removing an absent time is a
// no-op.
func (inv *Inventory) Remove(date, t string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	delete(inv.free[date], t)
}

// Times returns the free times for date, sorted, as an independent copy.
func (inv *Inventory) Times(date string) []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.timesLocked(date)
}

func (inv *Inventory) timesLocked(date string) []string {
	times := make([]string, 0, len(inv.free[date]))
	for t := range inv.free[date] {
		times = append(times, t)
	}
	sort.Strings(times)
	return times
}

// All returns a snapshot of the whole catalog, dates mapped to sorted free
// times.
func (inv *Inventory) All() map[string][]string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make(map[string][]string, len(inv.free))
	for date := range inv.free {
		out[date] = inv.timesLocked(date)
	}
	return out
}
