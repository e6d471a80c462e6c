package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/LandBooker/internal/cache"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/service/ports"
	"github.com/stpnv0/LandBooker/internal/session"
	"github.com/stpnv0/LandBooker/pkg/metrics"
	"github.com/wb-go/wbf/logger"
)

const plotsCacheKey = "available_plots"

func bookingsCacheKey(userID int64) string {
	return fmt.Sprintf("user_%d_bookings", userID)
}

// CatalogService serves the plot catalog and the user's bookings. Listings are
// read through a TTL cache and stored in the user's session for paging.
// Gateway failures degrade to empty listings.
type CatalogService struct {
	gateway      ports.Gateway
	sessions     *session.Store
	plots        *cache.Cache[[]domain.Plot]
	bookings     *cache.Cache[[]domain.Booking]
	listingTTL   time.Duration
	catalogLimit int
	logger       logger.Logger
}

func NewCatalogService(
	gateway ports.Gateway,
	sessions *session.Store,
	plots *cache.Cache[[]domain.Plot],
	bookings *cache.Cache[[]domain.Booking],
	listingTTL time.Duration,
	catalogLimit int,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		gateway:      gateway,
		sessions:     sessions,
		plots:        plots,
		bookings:     bookings,
		listingTTL:   listingTTL,
		catalogLimit: catalogLimit,
		logger:       logger,
	}
}

// Catalog fetches the available plots, through the cache unless refresh is
// set, and stores them in the user's session at page 0.
func (s *CatalogService) Catalog(ctx context.Context, userID int64, refresh bool) []domain.Plot {
	plots := s.availablePlots(ctx, refresh)

	sess := s.sessions.Get(userID)
	sess.Plots = plots
	sess.PlotsPage = 0
	s.sessions.Save(sess)

	return plots
}

// CatalogPage pages through the listing stored in the session, fetching one
// if there is none.
func (s *CatalogService) CatalogPage(ctx context.Context, userID int64, page int) []domain.Plot {
	sess := s.sessions.Get(userID)
	if sess.Plots == nil {
		sess.Plots = s.availablePlots(ctx, false)
	}
	sess.PlotsPage = page
	s.sessions.Save(sess)

	return sess.Plots
}

func (s *CatalogService) UserBookings(ctx context.Context, userID int64, refresh bool) []domain.Booking {
	bookings := s.userBookings(ctx, userID, refresh)

	sess := s.sessions.Get(userID)
	sess.Bookings = bookings
	sess.BookingsPage = 0
	s.sessions.Save(sess)

	return bookings
}

func (s *CatalogService) UserBookingsPage(ctx context.Context, userID int64, page int) []domain.Booking {
	sess := s.sessions.Get(userID)
	if sess.Bookings == nil {
		sess.Bookings = s.userBookings(ctx, userID, false)
	}
	sess.BookingsPage = page
	s.sessions.Save(sess)

	return sess.Bookings
}

// Plot looks the plot up in the user's listing first and asks the gateway
// otherwise. Any gateway failure is reported as ErrPlotNotFound.
func (s *CatalogService) Plot(ctx context.Context, userID, plotID int64) (domain.Plot, error) {
	sess := s.sessions.Get(userID)
	if p, ok := sess.FindPlot(plotID); ok {
		return p, nil
	}

	return s.FreshPlot(ctx, plotID)
}

// FreshPlot always asks the gateway, bypassing the session listing. Used where
// the current status matters more than the displayed one.
func (s *CatalogService) FreshPlot(ctx context.Context, plotID int64) (domain.Plot, error) {
	p, err := s.gateway.GetPlot(ctx, plotID)
	if err != nil {
		s.logger.Warn("plot lookup failed",
			logger.Int64("plot_id", plotID),
			logger.String("error", err.Error()),
		)
		return domain.Plot{}, fmt.Errorf("get plot %d: %w", plotID, domain.ErrPlotNotFound)
	}

	return *p, nil
}

// Booking finds one of the user's bookings, refetching the listing when the
// stored one does not contain it.
func (s *CatalogService) Booking(ctx context.Context, userID, bookingID int64) (domain.Booking, error) {
	sess := s.sessions.Get(userID)
	if b, ok := sess.FindBooking(bookingID); ok {
		return b, nil
	}

	return s.FreshBooking(ctx, userID, bookingID)
}

// FreshBooking refetches the user's bookings from the gateway, stores them in
// the session and looks bookingID up in the new listing.
func (s *CatalogService) FreshBooking(ctx context.Context, userID, bookingID int64) (domain.Booking, error) {
	bookings := s.userBookings(ctx, userID, true)

	sess := s.sessions.Get(userID)
	sess.Bookings = bookings
	s.sessions.Save(sess)

	for _, b := range bookings {
		if b.ID == bookingID {
			return b, nil
		}
	}

	return domain.Booking{}, fmt.Errorf("booking %d: %w", bookingID, domain.ErrBookingNotFound)
}

// Invalidate drops the cached catalog and the user's cached bookings, both in
// the TTL caches and in the session.
func (s *CatalogService) Invalidate(userID int64) {
	s.plots.Delete(plotsCacheKey)
	s.bookings.Delete(bookingsCacheKey(userID))
	s.reportCacheSize()

	sess := s.sessions.Get(userID)
	sess.Plots = nil
	sess.Bookings = nil
	s.sessions.Save(sess)
}

func (s *CatalogService) availablePlots(ctx context.Context, refresh bool) []domain.Plot {
	if !refresh {
		if plots, ok := s.plots.Get(plotsCacheKey); ok {
			return plots
		}
	}

	plots, err := s.gateway.ListAvailablePlots(ctx, 1, s.catalogLimit)
	if err != nil {
		s.logger.Warn("catalog degraded to empty",
			logger.String("error", err.Error()),
		)
		return []domain.Plot{}
	}

	s.plots.SetWithTTL(plotsCacheKey, plots, s.listingTTL)
	s.reportCacheSize()
	return plots
}

func (s *CatalogService) userBookings(ctx context.Context, userID int64, refresh bool) []domain.Booking {
	key := bookingsCacheKey(userID)
	if !refresh {
		if bookings, ok := s.bookings.Get(key); ok {
			return bookings
		}
	}

	bookings, err := s.gateway.ListUserBookings(ctx, userID)
	if err != nil {
		s.logger.Warn("bookings degraded to empty",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		return []domain.Booking{}
	}

	s.bookings.SetWithTTL(key, bookings, s.listingTTL)
	s.reportCacheSize()
	return bookings
}

func (s *CatalogService) reportCacheSize() {
	metrics.CacheEntries.WithLabelValues("plots").Set(float64(s.plots.Len()))
	metrics.CacheEntries.WithLabelValues("bookings").Set(float64(s.bookings.Len()))
}
