package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// bookingTransitions is the single authoritative lifecycle table. The server owns
// the transitions; the client mirrors them to gate the actions it offers.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id,omitempty"`
	PlotID        int64         `json:"plot_id"`
	PlotTitle     string        `json:"plot_title"`
	PlotPrice     float64       `json:"plot_price"`
	PlotArea      string        `json:"plot_area"`
	PlotLocation  string        `json:"plot_location"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
}

// CancellableByCustomer reports whether the buyer may cancel the booking.
// Only pending bookings are offered a cancel action; confirmed bookings are
// cancelled by a manager.
func (b *Booking) CancellableByCustomer() bool {
	return b.Status == BookingStatusPending && CanTransition(b.Status, BookingStatusCancelled)
}

func (b *Booking) IsExpired(now time.Time) bool {
	if b.ExpiresAt == nil {
		return false
	}
	return now.After(*b.ExpiresAt)
}

// Validate checks the invariants a booking received from the API must hold.
func (b *Booking) Validate() error {
	if b.ExpiresAt != nil && !b.CreatedAt.IsZero() && b.ExpiresAt.Before(b.CreatedAt) {
		return ErrInvalidBooking
	}
	return nil
}

// BookingEvent is a lifecycle transition that produces a notification.
type BookingEvent string

const (
	BookingEventCreated   BookingEvent = "created"
	BookingEventConfirmed BookingEvent = "confirmed"
	BookingEventRejected  BookingEvent = "rejected"
	BookingEventCancelled BookingEvent = "cancelled"
)
