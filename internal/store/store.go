// Package store is the document store client for the portal's four
// collections. Single-document lookups return (nil, nil) when nothing matches.
package store

import (
	"context"

	"github.com/doctorsportal/doctors-api/internal/models"
)

const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
)

type ServiceStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	// ListServiceTitles returns services projected to their id and title.
	ListServiceTitles(ctx context.Context) ([]models.Service, error)
	UpsertServiceByTitle(ctx context.Context, svc *models.Service) (*models.WriteResult, error)
}

type BookingStore interface {
	ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListBookingsByPatient(ctx context.Context, patientID string) ([]models.Booking, error)
	FindBooking(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	InsertBooking(ctx context.Context, b *models.Booking) (*models.WriteResult, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUser(ctx context.Context, uid string) (*models.User, error)
	UpsertUser(ctx context.Context, u *models.User) (*models.WriteResult, error)
	SetUserRole(ctx context.Context, uid, role string) (*models.WriteResult, error)
}

type DoctorStore interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	InsertDoctor(ctx context.Context, d *models.Doctor) (*models.WriteResult, error)
}

// Store is the full document store surface the API is built on.
type Store interface {
	ServiceStore
	BookingStore
	UserStore
	DoctorStore
	Ping(ctx context.Context) error
}

var (
	_ Store = (*Mongo)(nil)
	_ Store = (*Memory)(nil)
)
