package store

import (
	"errors"
	"testing"
	"time"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingBooking(id string) models.Booking {
	return models.Booking{
		ID:           id,
		Service:      "Haircut",
		CustomerName: "Anna",
		Date:         "2025-09-13",
		Time:         "11:00",
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}
}

func TestStatusTransitions(t *testing.T) {
	s := NewBookings()
	s.Put(pendingBooking("b1"))

	require.NoError(t, s.SetStatus("b1", models.StatusConfirmed))
	require.NoError(t, s.SetStatus("b1", models.StatusPaid))

	b, ok := s.Get("b1")
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, b.Status)
}

func TestStatusIdempotentAtTarget(t *testing.T) {
	s := NewBookings()
	s.Put(pendingBooking("b1"))

	require.NoError(t, s.SetStatus("b1", models.StatusPaid))
	require.NoError(t, s.SetStatus("b1", models.StatusPaid))
}

func TestInvalidTransitionRejected(t *testing.T) {
	s := NewBookings()
	s.Put(pendingBooking("b1"))
	require.NoError(t, s.SetStatus("b1", models.StatusPaid))

	err := s.SetStatus("b1", models.StatusConfirmed)
	var invalid *InvalidTransitionError
	assert.True(t, errors.As(err, &invalid), "paid booking cannot move back to confirmed")
}

func TestSetStatusUnknownID(t *testing.T) {
	s := NewBookings()

	err := s.SetStatus("nope", models.StatusPaid)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "booking", notFound.Kind)
}

func TestAllOrdersByCreation(t *testing.T) {
	s := NewBookings()
	older := pendingBooking("older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	s.Put(pendingBooking("newer"))
	s.Put(older)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "older", all[0].ID)
}
