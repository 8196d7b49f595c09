package services

import (
	"context"
	"fmt"

	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
)

// ComputeAvailability annotates each service with the declared slots that no
// booking for that service's title occupies. bookings are assumed to be for a
// single date; bookings naming an unknown treatment are ignored.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.AvailableService {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := booked[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.TreatmentName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.AvailableService, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Title]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				available = append(available, slot)
			}
		}
		out = append(out, models.AvailableService{Service: svc, Available: available})
	}
	return out
}

type AvailabilityService struct {
	services    store.ServiceStore
	bookings    store.BookingStore
	defaultDate string
}

func NewAvailabilityService(services store.ServiceStore, bookings store.BookingStore, defaultDate string) *AvailabilityService {
	return &AvailabilityService{services: services, bookings: bookings, defaultDate: defaultDate}
}

// ForDate loads every service and the bookings on date and computes what is
// still open. An empty date falls back to the configured default.
func (s *AvailabilityService) ForDate(ctx context.Context, date string) ([]models.AvailableService, error) {
	if date == "" {
		date = s.defaultDate
	}
	services, err := s.services.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	bookings, err := s.bookings.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %q: %w", date, err)
	}
	return ComputeAvailability(services, bookings), nil
}
