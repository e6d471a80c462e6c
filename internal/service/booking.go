package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/service/ports"
	"github.com/stpnv0/LandBooker/internal/session"
	"github.com/wb-go/wbf/logger"
)

// BookingService drives the per-user booking and cancel flows.
type BookingService struct {
	gateway  ports.Gateway
	catalog  *CatalogService
	sessions *session.Store
	notifier ports.BookingNotifier
	logger   logger.Logger

	inflight sync.WaitGroup
}

func NewBookingService(
	gateway ports.Gateway,
	catalog *CatalogService,
	sessions *session.Store,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		gateway:  gateway,
		catalog:  catalog,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// SelectPlot opens a booking flow for an available plot. The status is read
// from the gateway, not from the listing the user is looking at. On error the
// session is left untouched.
func (s *BookingService) SelectPlot(ctx context.Context, userID, plotID int64) (domain.Plot, error) {
	plot, err := s.catalog.FreshPlot(ctx, plotID)
	if err != nil {
		return domain.Plot{}, err
	}

	if !plot.IsAvailable() {
		return domain.Plot{}, fmt.Errorf("plot %d is %s: %w", plotID, plot.Status, domain.ErrPlotUnavailable)
	}

	sess := s.sessions.Get(userID)
	sess.AwaitContact(plotID)
	s.sessions.Save(sess)

	s.logger.Info("booking flow started",
		logger.Int64("user_id", userID),
		logger.Int64("plot_id", plotID),
	)

	return plot, nil
}

// SubmitContact creates the booking for the selected plot. The flow is closed
// whatever the outcome; a failed booking has to be started over.
func (s *BookingService) SubmitContact(ctx context.Context, customer domain.Customer, phone string) (*domain.Booking, error) {
	sess := s.sessions.Get(customer.ID)
	if sess.State != session.StateAwaitingContact {
		return nil, domain.ErrNoActiveSelection
	}

	plotID := sess.SelectedPlotID
	sess.ResetFlow()
	s.sessions.Save(sess)

	booking, err := s.gateway.CreateBooking(ctx, plotID, domain.NewContact(customer, phone))
	if err != nil {
		s.logger.Error("booking creation failed",
			logger.Int64("user_id", customer.ID),
			logger.Int64("plot_id", plotID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create booking for plot %d: %w", plotID, domain.ErrBookingFailed)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("user_id", customer.ID),
		logger.Int64("plot_id", plotID),
	)

	s.catalog.Invalidate(customer.ID)

	if booking.UserID == 0 {
		booking.UserID = customer.ID
	}
	s.notify(ctx, domain.BookingEventCreated, booking)

	return booking, nil
}

// AbortBooking closes an open booking flow and reports whether there was one.
func (s *BookingService) AbortBooking(userID int64) bool {
	sess := s.sessions.Get(userID)
	if sess.State != session.StateAwaitingContact {
		return false
	}

	sess.ResetFlow()
	s.sessions.Save(sess)

	s.logger.Info("booking flow aborted", logger.Int64("user_id", userID))
	return true
}

// RequestCancel opens a cancel flow for one of the user's bookings, checking
// the status against a freshly fetched listing.
func (s *BookingService) RequestCancel(ctx context.Context, userID, bookingID int64) (domain.Booking, error) {
	booking, err := s.catalog.FreshBooking(ctx, userID, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}

	if !booking.CancellableByCustomer() {
		return domain.Booking{}, fmt.Errorf("booking %d is %s: %w", bookingID, booking.Status, domain.ErrBookingNotCancelable)
	}

	sess := s.sessions.Get(userID)
	sess.ConfirmCancel(bookingID)
	s.sessions.Save(sess)

	return booking, nil
}

// ConfirmCancel cancels the booking awaiting confirmation. The flow is closed
// whatever the outcome.
func (s *BookingService) ConfirmCancel(ctx context.Context, userID int64) (int64, error) {
	sess := s.sessions.Get(userID)
	if sess.State != session.StateConfirmingCancel {
		return 0, domain.ErrNoPendingCancel
	}

	bookingID := sess.CancellingBookingID
	booking, known := sess.FindBooking(bookingID)
	sess.ResetFlow()
	s.sessions.Save(sess)

	if err := s.gateway.CancelBooking(ctx, bookingID); err != nil {
		s.logger.Error("booking cancel failed",
			logger.Int64("user_id", userID),
			logger.Int64("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return bookingID, fmt.Errorf("cancel booking %d: %w", bookingID, domain.ErrCancelFailed)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("user_id", userID),
		logger.Int64("booking_id", bookingID),
	)

	s.catalog.Invalidate(userID)

	if known && domain.CanTransition(booking.Status, domain.BookingStatusCancelled) {
		booking.Status = domain.BookingStatusCancelled
		booking.UserID = userID
		s.notify(ctx, domain.BookingEventCancelled, &booking)
	}

	return bookingID, nil
}

// Wait blocks until every notification started so far has been delivered.
func (s *BookingService) Wait() {
	s.inflight.Wait()
}

func (s *BookingService) notify(ctx context.Context, event domain.BookingEvent, booking *domain.Booking) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.notifier.Notify(context.WithoutCancel(ctx), event, booking)
	}()
}

// DeclineCancel closes an open cancel flow and reports whether there was one.
func (s *BookingService) DeclineCancel(userID int64) bool {
	sess := s.sessions.Get(userID)
	if sess.State != session.StateConfirmingCancel {
		return false
	}

	sess.ResetFlow()
	s.sessions.Save(sess)
	return true
}

// Reset closes any open flow, used by /cancel and the main menu.
func (s *BookingService) Reset(userID int64) bool {
	sess := s.sessions.Get(userID)
	if !sess.InFlow() {
		return false
	}

	sess.ResetFlow()
	s.sessions.Save(sess)
	return true
}
