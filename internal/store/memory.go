package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctorsportal/doctors-api/internal/models"
)

// Memory is a process-local Store. Records are copied on the way in and out;
// Extra maps are shared, so callers must not mutate them after a write.
type Memory struct {
	mu       sync.RWMutex
	services []models.Service
	bookings []models.Booking
	users    []models.User
	doctors  []models.Doctor
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *Memory) ListServices(ctx context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		s.Slots = cloneSlots(s.Slots)
		out = append(out, s)
	}
	return out, nil
}

func (m *Memory) ListServiceTitles(ctx context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		out = append(out, models.Service{ID: s.ID, Title: s.Title})
	}
	return out, nil
}

func (m *Memory) UpsertServiceByTitle(ctx context.Context, svc *models.Service) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := *svc
	doc.Slots = cloneSlots(svc.Slots)
	for i := range m.services {
		if m.services[i].Title == svc.Title {
			doc.ID = m.services[i].ID
			m.services[i] = doc
			return &models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	doc.ID = primitive.NewObjectID()
	m.services = append(m.services, doc)
	return &models.WriteResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc.ID}, nil
}

func (m *Memory) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return m.filterBookings(func(b *models.Booking) bool { return b.Date == date }), nil
}

func (m *Memory) ListBookingsByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	return m.filterBookings(func(b *models.Booking) bool { return b.PatientID == patientID }), nil
}

func (m *Memory) FindBooking(ctx context.Context, key models.BookingKey) (*models.Booking, error) {
	found := m.filterBookings(func(b *models.Booking) bool { return b.Key() == key })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (m *Memory) InsertBooking(ctx context.Context, b *models.Booking) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.bookings = append(m.bookings, *b)
	return &models.WriteResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (m *Memory) filterBookings(match func(*models.Booking) bool) []models.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0)
	for i := range m.bookings {
		if match(&m.bookings[i]) {
			out = append(out, m.bookings[i])
		}
	}
	return out
}

func (m *Memory) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.User, 0, len(m.users)), m.users...), nil
}

func (m *Memory) FindUser(ctx context.Context, uid string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.UID == uid {
			return &u, nil
		}
	}
	return nil, nil
}

// UpsertUser mirrors a $set upsert: declared fields that are empty on u are
// left as stored.
func (m *Memory) UpsertUser(ctx context.Context, u *models.User) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].UID != u.UID {
			continue
		}
		cur := m.users[i]
		next := cur
		if u.Role != "" {
			next.Role = u.Role
		}
		if u.Name != "" {
			next.Name = u.Name
		}
		if u.Email != "" {
			next.Email = u.Email
		}
		if len(u.Extra) > 0 {
			merged := make(map[string]interface{}, len(cur.Extra)+len(u.Extra))
			for k, v := range cur.Extra {
				merged[k] = v
			}
			for k, v := range u.Extra {
				merged[k] = v
			}
			next.Extra = merged
		}
		m.users[i] = next
		res := &models.WriteResult{Acknowledged: true, MatchedCount: 1}
		if !sameUser(&cur, &next) {
			res.ModifiedCount = 1
		}
		return res, nil
	}
	doc := *u
	doc.ID = primitive.NewObjectID()
	m.users = append(m.users, doc)
	return &models.WriteResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc.ID}, nil
}

func (m *Memory) SetUserRole(ctx context.Context, uid, role string) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].UID == uid {
			res := &models.WriteResult{Acknowledged: true, MatchedCount: 1}
			if m.users[i].Role != role {
				m.users[i].Role = role
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return &models.WriteResult{Acknowledged: true}, nil
}

func (m *Memory) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]models.Doctor, 0, len(m.doctors)), m.doctors...), nil
}

func (m *Memory) InsertDoctor(ctx context.Context, d *models.Doctor) (*models.WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	m.doctors = append(m.doctors, *d)
	return &models.WriteResult{Acknowledged: true, InsertedID: d.ID}, nil
}

// cloneSlots copies slots, keeping an empty list distinct from none.
func cloneSlots(slots []string) []string {
	if slots == nil {
		return nil
	}
	return append(make([]string, 0, len(slots)), slots...)
}

func sameUser(a, b *models.User) bool {
	if a.Role != b.Role || a.Name != b.Name || a.Email != b.Email || len(a.Extra) != len(b.Extra) {
		return false
	}
	return len(a.Extra) == 0 || reflect.DeepEqual(a.Extra, b.Extra)
}
