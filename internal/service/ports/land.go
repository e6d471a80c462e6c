package ports

import (
	"context"

	"github.com/stpnv0/LandBooker/internal/domain"
)

type LandStore interface {
	ListLands(ctx context.Context) ([]domain.Land, error)
	CreateLand(ctx context.Context, land domain.Land) error
	UpdateLandStatus(ctx context.Context, landID string, status domain.LandStatus) error
	CreateForm(ctx context.Context, form domain.BookingForm) error
	ListForms(ctx context.Context) ([]domain.BookingForm, error)
}
