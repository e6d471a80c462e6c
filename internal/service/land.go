package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/service/ports"
)

// LandService backs the web viewer.
type LandService struct {
	store ports.LandStore
}

func NewLandService(store ports.LandStore) *LandService {
	return &LandService{store: store}
}

func (s *LandService) List(ctx context.Context) ([]domain.Land, error) {
	return s.store.ListLands(ctx)
}

func (s *LandService) Create(ctx context.Context, input domain.CreateLandInput) (*domain.Land, error) {
	landID := strings.TrimSpace(input.LandID)
	if landID == "" {
		return nil, fmt.Errorf("%w: land_id is required", domain.ErrValidation)
	}
	if input.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if input.Square <= 0 {
		return nil, fmt.Errorf("%w: square must be positive", domain.ErrValidation)
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %d", domain.ErrValidation, input.Status)
	}

	land := domain.Land{
		LandID:      landID,
		Cost:        input.Cost,
		Square:      input.Square,
		LandDataURL: input.LandDataURL,
		Status:      input.Status,
	}

	if err := s.store.CreateLand(ctx, land); err != nil {
		return nil, fmt.Errorf("create land: %w", err)
	}

	return &land, nil
}

func (s *LandService) UpdateStatus(ctx context.Context, landID string, status domain.LandStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %d", domain.ErrValidation, status)
	}

	if err := s.store.UpdateLandStatus(ctx, landID, status); err != nil {
		return fmt.Errorf("update land %s: %w", landID, err)
	}

	return nil
}

func (s *LandService) Forms(ctx context.Context) ([]domain.BookingForm, error) {
	return s.store.ListForms(ctx)
}

// SubmitForm records a booking request left on the web page.
func (s *LandService) SubmitForm(ctx context.Context, input domain.CreateBookingFormInput) (*domain.BookingForm, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.LandID) == "" {
		return nil, fmt.Errorf("%w: land_id is required", domain.ErrValidation)
	}

	lands, err := s.store.ListLands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lands: %w", err)
	}
	if !containsLand(lands, input.LandID) {
		return nil, fmt.Errorf("land %s: %w", input.LandID, domain.ErrLandNotFound)
	}

	form := domain.BookingForm{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Surname:   input.Surname,
		Phone:     input.Phone,
		LandID:    input.LandID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateForm(ctx, form); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	return &form, nil
}

func containsLand(lands []domain.Land, id string) bool {
	for _, l := range lands {
		if l.LandID == id {
			return true
		}
	}
	return false
}
