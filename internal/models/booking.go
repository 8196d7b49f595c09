package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	TreatmentID   string                 `bson:"treatmentId" json:"treatmentId"`
	TreatmentName string                 `bson:"treatmentName" json:"treatmentName"`
	Date          string                 `bson:"date" json:"date"`
	Slot          string                 `bson:"slot" json:"slot"`
	PatientID     string                 `bson:"patientId" json:"patientId"`
	Patient       string                 `bson:"patient,omitempty" json:"patient,omitempty"`
	PatientName   string                 `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Extra         map[string]interface{} `bson:",inline" json:"-"`
}

var bookingFields = []string{"_id", "treatmentId", "treatmentName", "date", "slot", "patientId", "patient", "patientName", "phone"}

// BookingKey identifies a booking for the one-per-patient-per-treatment-per-date rule.
type BookingKey struct {
	TreatmentID string
	Date        string
	PatientID   string
}

func (b *Booking) Key() BookingKey {
	return BookingKey{TreatmentID: b.TreatmentID, Date: b.Date, PatientID: b.PatientID}
}

func (b Booking) MarshalJSON() ([]byte, error) {
	type alias Booking
	return marshalWithExtra(alias(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, bookingFields...)
	if err != nil {
		return err
	}
	*b = Booking(a)
	b.Extra = extra
	return nil
}
