package booking

import (
	"errors"
	"testing"

	"trimly/models"
	"trimly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *Service {
	inv := store.NewInventory(store.DefaultCatalog())
	return NewService(inv, store.NewBookings(), zap.NewNop())
}

func fullIntent() models.BookingIntent {
	return models.BookingIntent{
		Service:      "Haircut",
		CustomerName: "Anna",
		Date:         "2025-09-13",
		Time:         "11:00",
	}
}

func TestCreateReservesSlot(t *testing.T) {
	svc := newTestService()

	b, err := svc.Create(fullIntent())
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.False(t, svc.Inventory.Available("2025-09-13", "11:00"))

	stored, ok := svc.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "Anna", stored.CustomerName)
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	svc := newTestService()
	_, err := svc.Create(fullIntent())
	require.NoError(t, err)

	_, err = svc.Create(fullIntent())
	var unavailable *store.SlotUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.ElementsMatch(t, []string{"10:00", "14:00"}, unavailable.Available)
}

func TestCancelRestoresExactSlot(t *testing.T) {
	svc := newTestService()
	b, err := svc.Create(fullIntent())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(b.ID))

	assert.True(t, svc.Inventory.Available("2025-09-13", "11:00"))
	_, ok := svc.Get(b.ID)
	assert.False(t, ok, "cancelled booking is removed")

	// The slot must be reservable again.
	_, err = svc.Create(fullIntent())
	assert.NoError(t, err)
}

func TestCancelUnknownBooking(t *testing.T) {
	svc := newTestService()

	err := svc.Cancel("missing")
	var notFound *store.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestMarkPaidLifecycle(t *testing.T) {
	svc := newTestService()
	b, err := svc.Create(fullIntent())
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(b.ID))
	require.NoError(t, svc.MarkPaid(b.ID))

	paid, _ := svc.Get(b.ID)
	assert.Equal(t, models.StatusPaid, paid.Status)
}
