package domain

import "fmt"

// ServiceType is the photography service requested in a booking
type ServiceType string

const (
	ServiceWedding  ServiceType = "casamento"
	ServicePortrait ServiceType = "ensaio"
	ServiceEvent    ServiceType = "evento"
	ServiceBook     ServiceType = "book"
)

// AllServiceTypes lists every bookable service
var AllServiceTypes = []ServiceType{
	ServiceWedding,
	ServicePortrait,
	ServiceEvent,
	ServiceBook,
}

// ParseServiceType converts a wire string into a ServiceType
func ParseServiceType(s string) (ServiceType, error) {
	for _, st := range AllServiceTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("domain: unknown service type %q", s)
}

// Label returns the human-readable Portuguese name used in messages
func (s ServiceType) Label() string {
	switch s {
	case ServiceWedding:
		return "Casamento"
	case ServicePortrait:
		return "Ensaio fotográfico"
	case ServiceEvent:
		return "Cobertura de evento"
	case ServiceBook:
		return "Book profissional"
	default:
		return string(s)
	}
}
