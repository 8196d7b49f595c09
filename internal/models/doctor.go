package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name      string                 `bson:"name" json:"name"`
	Specialty string                 `bson:"specialty" json:"specialty"`
	Email     string                 `bson:"email,omitempty" json:"email,omitempty"`
	Img       string                 `bson:"img,omitempty" json:"img,omitempty"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

var doctorFields = []string{"_id", "name", "specialty", "email", "img"}

func (d Doctor) MarshalJSON() ([]byte, error) {
	type alias Doctor
	return marshalWithExtra(alias(d), d.Extra)
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	type alias Doctor
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, doctorFields...)
	if err != nil {
		return err
	}
	*d = Doctor(a)
	d.Extra = extra
	return nil
}
