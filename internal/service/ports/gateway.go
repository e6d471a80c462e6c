package ports

import (
	"context"

	"github.com/stpnv0/LandBooker/internal/domain"
)

type Gateway interface {
	ListAvailablePlots(ctx context.Context, page, limit int) ([]domain.Plot, error)
	GetPlot(ctx context.Context, id int64) (*domain.Plot, error)
	ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, plotID int64, contact domain.Contact) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}
