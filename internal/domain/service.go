package domain

import (
	"strings"
	"time"
)

// Service is an entry of a company's service catalog
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	Category        *string
	DurationMinutes int
	Price           float64
	Description     *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NormalizedName returns the name used for duplicate detection
func (s *Service) NormalizedName() string {
	return NormalizeServiceName(s.Name)
}

// NormalizeServiceName trims and lower-cases a service name
func NormalizeServiceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TotalDurationMinutes sums durations of the given services
func TotalDurationMinutes(services []*Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}
