package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/doctorsportal/doctors-api/internal/models"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials uri and pings the primary before returning, so a store
// that cannot be reached fails here rather than on the first request.
func ConnectMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongo(client, client.Database(database)), nil
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{client: client, db: db}
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := m.findAll(ctx, ServicesCollection, bson.M{}, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (m *Mongo) ListServiceTitles(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	opts := options.Find().SetProjection(bson.M{"title": 1})
	if err := m.findAll(ctx, ServicesCollection, bson.M{}, &services, opts); err != nil {
		return nil, err
	}
	return services, nil
}

func (m *Mongo) UpsertServiceByTitle(ctx context.Context, svc *models.Service) (*models.WriteResult, error) {
	doc := *svc
	doc.ID = primitive.NilObjectID
	res, err := m.db.Collection(ServicesCollection).UpdateOne(ctx,
		bson.M{"title": svc.Title},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert service %q: %w", svc.Title, err)
	}
	return updateResult(res), nil
}

func (m *Mongo) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := m.findAll(ctx, BookingsCollection, bson.M{"date": date}, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mongo) ListBookingsByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := m.findAll(ctx, BookingsCollection, bson.M{"patientId": patientID}, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mongo) FindBooking(ctx context.Context, key models.BookingKey) (*models.Booking, error) {
	filter := bson.M{
		"treatmentId": key.TreatmentID,
		"date":        key.Date,
		"patientId":   key.PatientID,
	}
	var b models.Booking
	if found, err := m.findOne(ctx, BookingsCollection, filter, &b); err != nil || !found {
		return nil, err
	}
	return &b, nil
}

func (m *Mongo) InsertBooking(ctx context.Context, b *models.Booking) (*models.WriteResult, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	res, err := m.db.Collection(BookingsCollection).InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := m.findAll(ctx, UsersCollection, bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mongo) FindUser(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	if found, err := m.findOne(ctx, UsersCollection, bson.M{"uid": uid}, &u); err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) UpsertUser(ctx context.Context, u *models.User) (*models.WriteResult, error) {
	doc := *u
	doc.ID = primitive.NilObjectID
	res, err := m.db.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"uid": u.UID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user %q: %w", u.UID, err)
	}
	return updateResult(res), nil
}

func (m *Mongo) SetUserRole(ctx context.Context, uid, role string) (*models.WriteResult, error) {
	res, err := m.db.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, fmt.Errorf("set role for %q: %w", uid, err)
	}
	return updateResult(res), nil
}

func (m *Mongo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := m.findAll(ctx, DoctorsCollection, bson.M{}, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (m *Mongo) InsertDoctor(ctx context.Context, d *models.Doctor) (*models.WriteResult, error) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	res, err := m.db.Collection(DoctorsCollection).InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (m *Mongo) findAll(ctx context.Context, collection string, filter interface{}, out interface{}, opts ...*options.FindOptions) error {
	cursor, err := m.db.Collection(collection).Find(ctx, filter, opts...)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (m *Mongo) findOne(ctx context.Context, collection string, filter interface{}, out interface{}) (bool, error) {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return true, nil
}

func updateResult(res *mongo.UpdateResult) *models.WriteResult {
	return &models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
