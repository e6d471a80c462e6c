package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

var errNoConnection = errors.New("nats connection is not configured")

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSink publishes notifications as JSON to <prefix>.<event>.
type NATSSink struct {
	pub    Publisher
	prefix string
}

func NewNATSSink(pub Publisher, prefix string) *NATSSink {
	return &NATSSink{pub: pub, prefix: prefix}
}

func (s *NATSSink) Name() string { return "nats" }

type bookingMessage struct {
	Event         domain.BookingEvent  `json:"event"`
	BookingID     int64                `json:"booking_id"`
	UserID        int64                `json:"user_id,omitempty"`
	PlotID        int64                `json:"plot_id"`
	PlotTitle     string               `json:"plot_title"`
	Status        domain.BookingStatus `json:"status"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	CreatedAt     time.Time            `json:"created_at"`
	SentAt        time.Time            `json:"sent_at"`
}

func (s *NATSSink) Send(ctx context.Context, event domain.BookingEvent, b *domain.Booking) error {
	if s.pub == nil {
		return errNoConnection
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context done: %w", err)
	}

	data, err := json.Marshal(bookingMessage{
		Event:         event,
		BookingID:     b.ID,
		UserID:        b.UserID,
		PlotID:        b.PlotID,
		PlotTitle:     b.PlotTitle,
		Status:        b.Status,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CreatedAt:     b.CreatedAt,
		SentAt:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal booking %d: %w", b.ID, err)
	}

	subject := s.prefix + "." + string(event)
	if err := s.pub.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	return nil
}

// ConnectNATS dials the server with unlimited reconnects.
func ConnectNATS(url string, log logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("land_booker"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", logger.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", logger.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return nc, nil
}
