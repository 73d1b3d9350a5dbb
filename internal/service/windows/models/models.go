package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudioluz/booking-service/internal/domain"
	"github.com/estudioluz/booking-service/pkg/types"
)

// CreateWindowRequest opens one bookable hour on a date
type CreateWindowRequest struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ListWindowsRequest asks for windows in an inclusive date range,
// optionally narrowed by status
type ListWindowsRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Status    *string
}

// WindowResponse is one window as shown on the operator side
type WindowResponse struct {
	ID        uuid.UUID     `json:"id"`
	Date      string        `json:"date"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Status    domain.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// WindowListResponse is the list wrapper
type WindowListResponse struct {
	Windows []*WindowResponse `json:"windows"`
	Total   int               `json:"total"`
}

// FromDomainWindow converts a domain window to the response form
func FromDomainWindow(w *domain.AvailableWindow) *WindowResponse {
	return &WindowResponse{
		ID:        w.ID,
		Date:      w.Date.Format(domain.DateFormat),
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FromDomainWindowList converts a slice of domain windows
func FromDomainWindowList(ws []*domain.AvailableWindow) *WindowListResponse {
	out := make([]*WindowResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromDomainWindow(w))
	}
	return &WindowListResponse{Windows: out, Total: len(out)}
}
