package notification

import (
	"context"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LogSink writes notifications to the application log.
type LogSink struct {
	logger logger.Logger
}

func NewLogSink(logger logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(_ context.Context, event domain.BookingEvent, b *domain.Booking) error {
	s.logger.Info("booking notification",
		logger.String("event", string(event)),
		logger.Int64("booking_id", b.ID),
		logger.Int64("plot_id", b.PlotID),
		logger.String("status", string(b.Status)),
	)
	return nil
}
