package windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	windowRepo "github.com/estudioluz/booking-service/internal/infra/storage/window"
	"github.com/estudioluz/booking-service/internal/service/windows/models"
)

// Service is the studio-side administration surface over available windows.
// Every mutation invalidates the availability cache so open calendars pick
// up the change on their next read.
type Service struct {
	windowRepo WindowRepository
	cache      CacheInvalidator
	logger     Logger
}

func NewService(windowRepo WindowRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		windowRepo: windowRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Create opens a new bookable window with status available
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: window %s %s-%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	window := &domain.AvailableWindow{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.StatusAvailable,
	}
	if err := window.Validate(); err != nil {
		s.logger.Warn("Create: window rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.windowRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.InvalidateCache(ctx)
	s.logger.Info("Create: window %s created", created.ID)
	return models.FromDomainWindow(created), nil
}

// List fetches windows in an inclusive date range, oldest first
func (s *Service) List(ctx context.Context, req *models.ListWindowsRequest) (*models.WindowListResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("List: inverted range")
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	filter := domain.WindowRangeFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status %q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	windows, err := s.windowRepo.ListByRange(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// Delete removes a window. Windows referenced by a booking are protected by
// the foreign key; the conflict surfaces as an internal error here.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: window %s", id)

	if _, err := s.windowRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window %s not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.windowRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for window %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.InvalidateCache(ctx)
	s.logger.Info("Delete: window %s removed", id)
	return nil
}
