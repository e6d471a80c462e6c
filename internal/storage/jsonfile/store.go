// Package jsonfile stores lands and booking forms as JSON arrays in two flat
// files. Every mutation rewrites the whole file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	landsFile = "lands.json"
	formsFile = "forms.json"
)

type Store struct {
	mu     sync.Mutex
	dir    string
	logger logger.Logger
}

// New creates dir if needed. The files themselves appear on the first write.
func New(dir string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Store{dir: dir, logger: log}, nil
}

func (s *Store) ListLands(_ context.Context) ([]domain.Land, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lands []domain.Land
	s.load(landsFile, &lands)
	return nonNil(lands), nil
}

func (s *Store) CreateLand(_ context.Context, land domain.Land) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lands []domain.Land
	s.load(landsFile, &lands)

	for _, l := range lands {
		if l.LandID == land.LandID {
			return fmt.Errorf("land %s: %w", land.LandID, domain.ErrLandExists)
		}
	}

	return s.save(landsFile, append(lands, land))
}

func (s *Store) UpdateLandStatus(_ context.Context, landID string, status domain.LandStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lands []domain.Land
	s.load(landsFile, &lands)

	for i := range lands {
		if lands[i].LandID == landID {
			lands[i].Status = status
			return s.save(landsFile, lands)
		}
	}

	return domain.ErrLandNotFound
}

func (s *Store) CreateForm(_ context.Context, form domain.BookingForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var forms []domain.BookingForm
	s.load(formsFile, &forms)

	return s.save(formsFile, append(forms, form))
}

func (s *Store) ListForms(_ context.Context) ([]domain.BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var forms []domain.BookingForm
	s.load(formsFile, &forms)
	return nonNil(forms), nil
}

// load leaves dst empty when the file is missing or unreadable; a corrupt file
// is overwritten by the next mutation.
func (s *Store) load(name string, dst any) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("storage file unreadable",
				logger.String("file", name),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("storage file corrupt, treating as empty",
			logger.String("file", name),
			logger.String("error", err.Error()),
		)
	}
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
