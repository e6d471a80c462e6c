package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
)

type createBookingRequest struct {
	PlotID        int64  `json:"plot_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	UserID        int64  `json:"user_id"`
}

type cancelBookingResponse struct {
	Success bool `json:"success"`
}

type bookingResponse struct {
	ID            int64   `json:"id"`
	PlotID        int64   `json:"plot_id"`
	PlotTitle     string  `json:"plot_title"`
	PlotPrice     float64 `json:"plot_price"`
	PlotArea      string  `json:"plot_area"`
	PlotLocation  string  `json:"plot_location"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	ExpiresAt     *string `json:"expires_at"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
}

// timeLayouts are tried in order; the API emits both zoned and naive ISO times.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", s)
}

func (r bookingResponse) toDomain() (domain.Booking, error) {
	b := domain.Booking{
		ID:            r.ID,
		PlotID:        r.PlotID,
		PlotTitle:     r.PlotTitle,
		PlotPrice:     r.PlotPrice,
		PlotArea:      r.PlotArea,
		PlotLocation:  r.PlotLocation,
		Status:        domain.BookingStatus(r.Status),
		CustomerName:  deref(r.CustomerName),
		CustomerPhone: deref(r.CustomerPhone),
		CustomerEmail: deref(r.CustomerEmail),
	}

	if r.CreatedAt != "" {
		created, err := parseTime(r.CreatedAt)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("created_at: %w", err)
		}
		b.CreatedAt = created
	}

	if r.ExpiresAt != nil && *r.ExpiresAt != "" {
		expires, err := parseTime(*r.ExpiresAt)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("expires_at: %w", err)
		}
		b.ExpiresAt = &expires
	}

	if err := b.Validate(); err != nil {
		return domain.Booking{}, err
	}

	return b, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
