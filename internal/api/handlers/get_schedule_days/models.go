package get_schedule_days

import (
	"time"

	"github.com/estudioluz/booking-service/internal/domain"
	getScheduleDays "github.com/estudioluz/booking-service/internal/usecase/get_schedule_days"
)

// DaysResponse is the HTTP response model
type DaysResponse struct {
	Days []Day `json:"days"`
}

// Day is the calendar view of one date
type Day struct {
	Date            string `json:"date"`
	Bookable        bool   `json:"bookable"`
	Reason          string `json:"reason,omitempty"`
	HasAvailability bool   `json:"hasAvailability"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *getScheduleDays.Response) *DaysResponse {
	days := make([]Day, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = Day{
			Date:            d.Date.Format(domain.DateFormat),
			Bookable:        d.Bookable,
			Reason:          d.Reason,
			HasAvailability: d.HasAvailability,
		}
	}
	return &DaysResponse{Days: days}
}

// ToUseCaseRequest parses the start and end query parameters
func ToUseCaseRequest(startStr, endStr string) (*getScheduleDays.Request, error) {
	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, err
	}
	return &getScheduleDays.Request{StartDate: start, EndDate: end}, nil
}
