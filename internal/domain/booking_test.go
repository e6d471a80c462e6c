package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusRejected, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBooking_CancellableByCustomer(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending}).CancellableByCustomer())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).CancellableByCustomer())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).CancellableByCustomer())
	assert.False(t, (&Booking{Status: BookingStatusRejected}).CancellableByCustomer())
	assert.False(t, (&Booking{Status: "archived"}).CancellableByCustomer())
}

func TestBooking_CancellableByCustomer_FollowsLifecycle(t *testing.T) {
	saved := bookingTransitions[BookingStatusPending]
	t.Cleanup(func() { bookingTransitions[BookingStatusPending] = saved })

	bookingTransitions[BookingStatusPending] = []BookingStatus{BookingStatusConfirmed}

	assert.False(t, (&Booking{Status: BookingStatusPending}).CancellableByCustomer())
}

func TestBooking_Validate(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	later := created.Add(24 * time.Hour)
	earlier := created.Add(-time.Hour)

	assert.NoError(t, (&Booking{CreatedAt: created}).Validate())
	assert.NoError(t, (&Booking{CreatedAt: created, ExpiresAt: &later}).Validate())
	assert.NoError(t, (&Booking{CreatedAt: created, ExpiresAt: &created}).Validate())
	assert.ErrorIs(t, (&Booking{CreatedAt: created, ExpiresAt: &earlier}).Validate(), ErrInvalidBooking)
}

func TestBooking_IsExpired(t *testing.T) {
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, (&Booking{}).IsExpired(now))
	assert.True(t, (&Booking{ExpiresAt: &past}).IsExpired(now))
	assert.False(t, (&Booking{ExpiresAt: &future}).IsExpired(now))
}

func TestNewContact(t *testing.T) {
	c := NewContact(Customer{ID: 42, Username: "ivan", FirstName: "Ivan"}, "+79990000000")
	assert.Equal(t, Contact{UserID: 42, Name: "Ivan", Phone: "+79990000000", Email: "ivan@telegram"}, c)

	anon := NewContact(Customer{ID: 7, FirstName: "Anna"}, "+7")
	assert.Equal(t, "not_provided@telegram", anon.Email)
}
