// Package availability is the read side of the scheduling data: window and
// booking range queries behind a short-lived cache, plus the window claim
// that invalidates it.
package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	windowRepo "github.com/estudioluz/booking-service/internal/infra/storage/window"
	"github.com/estudioluz/booking-service/pkg/rangecache"
)

// Cache entry kinds; keys are (kind, startDate, endDate)
const (
	kindWindows  = "windows"
	kindBookings = "bookings"
)

// DefaultCacheTTL bounds how stale availability reads may get
const DefaultCacheTTL = time.Hour

// Service is the availability store client
type Service struct {
	windows  WindowRepository
	bookings BookingRepository
	cache    rangecache.Cache
	ttl      time.Duration
	metrics  Metrics
	logger   Logger
}

// NewService creates the availability client. TTL <= 0 falls back to
// DefaultCacheTTL; nil metrics fall back to NopMetrics.
func NewService(
	windows WindowRepository,
	bookings BookingRepository,
	cache rangecache.Cache,
	ttl time.Duration,
	m Metrics,
	logger Logger,
) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if m == nil {
		m = NopMetrics{}
	}
	return &Service{
		windows:  windows,
		bookings: bookings,
		cache:    cache,
		ttl:      ttl,
		metrics:  m,
		logger:   logger,
	}
}

// GetAvailableWindows returns all windows whose date falls within
// [start, end] inclusive, ordered by date ascending. Results are cached per
// exact range for the configured TTL.
func (s *Service) GetAvailableWindows(ctx context.Context, start, end time.Time) ([]*domain.AvailableWindow, error) {
	key := rangecache.Key(kindWindows, start, end)

	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached []*domain.AvailableWindow
		if err := json.Unmarshal(payload, &cached); err == nil {
			s.metrics.CacheHit(kindWindows)
			return cached, nil
		}
		// A corrupt entry falls through to a fresh read
		s.logger.Warn("availability: dropping undecodable cache entry %s", key)
	}
	s.metrics.CacheMiss(kindWindows)

	windows, err := s.windows.ListByRange(ctx, domain.WindowRangeFilter{StartDate: start, EndDate: end})
	if err != nil {
		s.logger.Error("availability: window range read failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	s.store(ctx, key, windows)
	return windows, nil
}

// GetBookingsInRange returns all bookings whose preferred date falls within
// [start, end] inclusive, cached independently from windows.
func (s *Service) GetBookingsInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	key := rangecache.Key(kindBookings, start, end)

	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached []*domain.Booking
		if err := json.Unmarshal(payload, &cached); err == nil {
			s.metrics.CacheHit(kindBookings)
			return cached, nil
		}
		s.logger.Warn("availability: dropping undecodable cache entry %s", key)
	}
	s.metrics.CacheMiss(kindBookings)

	bookings, err := s.bookings.ListByRange(ctx, domain.BookingRangeFilter{StartDate: start, EndDate: end})
	if err != nil {
		s.logger.Error("availability: booking range read failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	s.store(ctx, key, bookings)
	return bookings, nil
}

// ClaimWindow moves the window to pending and clears every cached range so
// subsequent reads observe the claim. Staleness across other processes is
// accepted; this instance's cache is always coherent after a claim.
func (s *Service) ClaimWindow(ctx context.Context, id uuid.UUID) error {
	if err := s.windows.Claim(ctx, id); err != nil {
		if errors.Is(err, windowRepo.ErrNotClaimable) {
			s.logger.Warn("availability: window %s no longer claimable", id)
			return ErrWindowNotClaimable
		}
		s.logger.Error("availability: claim of window %s failed: %v", id, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	s.cache.InvalidateAll(ctx)
	s.metrics.WindowClaimed()
	s.logger.Info("availability: window %s claimed, cache invalidated", id)
	return nil
}

// InvalidateCache clears every cached range. Admin mutations (window CRUD,
// status transitions) call this so the public calendar reflects them.
func (s *Service) InvalidateCache(ctx context.Context) {
	s.cache.InvalidateAll(ctx)
}

func (s *Service) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("availability: cache encode for %s failed: %v", key, err)
		return
	}
	s.cache.Set(ctx, key, payload, s.ttl)
}
