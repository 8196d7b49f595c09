package services

import (
	"context"
	"fmt"

	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
)

type BookingResult struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking"`
}

type BookingService struct {
	bookings store.BookingStore
}

func NewBookingService(bookings store.BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create records b unless a booking with the same treatment, date and patient
// already exists, in which case that booking is returned with Success false.
// The check and the insert are separate store calls; two concurrent requests
// with the same key can both succeed.
func (s *BookingService) Create(ctx context.Context, b *models.Booking) (*BookingResult, error) {
	existing, err := s.bookings.FindBooking(ctx, b.Key())
	if err != nil {
		return nil, fmt.Errorf("look up booking: %w", err)
	}
	if existing != nil {
		return &BookingResult{Success: false, Booking: existing}, nil
	}
	if _, err := s.bookings.InsertBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &BookingResult{Success: true, Booking: b}, nil
}

func (s *BookingService) ForPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	bookings, err := s.bookings.ListBookingsByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for patient: %w", err)
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	return bookings, nil
}
