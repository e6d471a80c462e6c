package ports

import (
	"context"

	"github.com/stpnv0/LandBooker/internal/domain"
)

// BookingNotifier reports booking lifecycle events. The result is informational
// only; callers never branch on it.
type BookingNotifier interface {
	Notify(ctx context.Context, event domain.BookingEvent, booking *domain.Booking) bool
}
