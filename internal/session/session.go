// Package session keeps the per-user conversation state of the bot.
package session

import (
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingContact
	StateConfirmingCancel
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingContact:
		return "awaiting_contact"
	case StateConfirmingCancel:
		return "confirming_cancel"
	default:
		return "unknown"
	}
}

// Session is the state of one user. SelectedPlotID is meaningful only in
// StateAwaitingContact and CancellingBookingID only in StateConfirmingCancel.
type Session struct {
	UserID int64
	State  State

	SelectedPlotID      int64
	CancellingBookingID int64

	Plots        []domain.Plot
	PlotsPage    int
	Bookings     []domain.Booking
	BookingsPage int

	UpdatedAt time.Time
}

// AwaitContact opens a booking flow for plotID.
func (s *Session) AwaitContact(plotID int64) {
	s.State = StateAwaitingContact
	s.SelectedPlotID = plotID
	s.CancellingBookingID = 0
}

// ConfirmCancel opens a cancel flow for bookingID.
func (s *Session) ConfirmCancel(bookingID int64) {
	s.State = StateConfirmingCancel
	s.CancellingBookingID = bookingID
	s.SelectedPlotID = 0
}

// ResetFlow returns the session to idle; cached listings are kept.
func (s *Session) ResetFlow() {
	s.State = StateIdle
	s.SelectedPlotID = 0
	s.CancellingBookingID = 0
}

func (s *Session) InFlow() bool {
	return s.State != StateIdle
}

func (s *Session) FindPlot(id int64) (domain.Plot, bool) {
	for _, p := range s.Plots {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plot{}, false
}

func (s *Session) FindBooking(id int64) (domain.Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Booking{}, false
}
