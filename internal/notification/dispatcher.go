// Package notification fans booking lifecycle events out to sinks.
package notification

import (
	"context"
	"fmt"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/pkg/metrics"
	"github.com/wb-go/wbf/logger"
)

type Sink interface {
	Name() string
	Send(ctx context.Context, event domain.BookingEvent, booking *domain.Booking) error
}

// Dispatcher delivers a notification to every sink. A failing or panicking sink
// does not stop the others and never reaches the caller.
type Dispatcher struct {
	sinks  []Sink
	logger logger.Logger
}

func NewDispatcher(logger logger.Logger, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		sinks:  sinks,
		logger: logger,
	}
}

// Notify reports whether every sink accepted the notification.
func (d *Dispatcher) Notify(ctx context.Context, event domain.BookingEvent, booking *domain.Booking) bool {
	if booking == nil {
		d.logger.Warn("notification skipped (no booking)", logger.String("event", string(event)))
		return false
	}

	ok := true
	for _, sink := range d.sinks {
		if err := d.deliver(ctx, sink, event, booking); err != nil {
			ok = false
			metrics.NotificationsTotal.WithLabelValues(string(event), sink.Name(), "error").Inc()
			d.logger.Error("notification failed",
				logger.String("sink", sink.Name()),
				logger.String("event", string(event)),
				logger.Int64("booking_id", booking.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		metrics.NotificationsTotal.WithLabelValues(string(event), sink.Name(), "ok").Inc()
	}

	return ok
}

func (d *Dispatcher) deliver(ctx context.Context, sink Sink, event domain.BookingEvent, booking *domain.Booking) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()

	return sink.Send(ctx, event, booking)
}
