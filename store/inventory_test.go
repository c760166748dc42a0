package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInventory() *Inventory {
	return NewInventory(map[string][]string{
		"2025-09-13": {"10:00", "11:00", "14:00"},
		"2025-09-14": {"09:00", "12:00", "15:00"},
	})
}

func TestReserveRemovesSlot(t *testing.T) {
	inv := seedInventory()

	require.True(t, inv.Available("2025-09-13", "11:00"))
	require.NoError(t, inv.Reserve("2025-09-13", "11:00"))
	assert.False(t, inv.Available("2025-09-13", "11:00"))
	assert.Equal(t, []string{"10:00", "14:00"}, inv.Times("2025-09-13"))
}

func TestReserveTakenSlotCarriesAlternatives(t *testing.T) {
	inv := seedInventory()
	require.NoError(t, inv.Reserve("2025-09-13", "11:00"))

	err := inv.Reserve("2025-09-13", "11:00")
	var unavailable *SlotUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "2025-09-13", unavailable.Date)
	assert.Equal(t, []string{"10:00", "14:00"}, unavailable.Available)
}

func TestReserveUnknownDate(t *testing.T) {
	inv := seedInventory()

	err := inv.Reserve("2030-01-01", "10:00")
	var unavailable *SlotUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Empty(t, unavailable.Available)
}

func TestConcurrentReserveSingleWinner(t *testing.T) {
	inv := seedInventory()

	const workers = 64
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if inv.Reserve("2025-09-13", "11:00") == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent reservation may win")
	assert.False(t, inv.Available("2025-09-13", "11:00"))
}

func TestReleaseIsIdempotent(t *testing.T) {
	inv := seedInventory()
	require.NoError(t, inv.Reserve("2025-09-13", "11:00"))

	inv.Release("2025-09-13", "11:00")
	inv.Release("2025-09-13", "11:00")

	times := inv.Times("2025-09-13")
	assert.Equal(t, []string{"10:00", "11:00", "14:00"}, times, "duplicate release must not duplicate the entry")
}

func TestReleaseCreatesUnknownDate(t *testing.T) {
	inv := seedInventory()
	inv.Release("2030-01-01", "08:00")
	assert.True(t, inv.Available("2030-01-01", "08:00"))
}

func TestRemoveAbsentTimeIsNoOp(t *testing.T) {
	inv := seedInventory()
	inv.Remove("2025-09-13", "23:45")
	inv.Remove("2030-01-01", "10:00")
	assert.Equal(t, []string{"10:00", "11:00", "14:00"}, inv.Times("2025-09-13"))
}

func TestAllReturnsSnapshot(t *testing.T) {
	inv := seedInventory()
	all := inv.All()
	all["2025-09-13"][0] = "mutated"

	assert.Equal(t, []string{"10:00", "11:00", "14:00"}, inv.Times("2025-09-13"))
}
