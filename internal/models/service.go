package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable treatment with its date-independent slot labels.
type Service struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Title string                 `bson:"title" json:"title"`
	Slots []string               `bson:"slots" json:"slots,omitempty"` // nil when projected away
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

var serviceFields = []string{"_id", "title", "slots", "available"}

func (s Service) MarshalJSON() ([]byte, error) {
	type alias Service
	extra := s.Extra
	if s.Slots != nil && len(s.Slots) == 0 {
		// omitempty drops an empty list; a stored [] is still listed
		extra = make(map[string]interface{}, len(s.Extra)+1)
		for k, v := range s.Extra {
			extra[k] = v
		}
		extra["slots"] = []string{}
	}
	return marshalWithExtra(alias(s), extra)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	type alias Service
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, serviceFields...)
	if err != nil {
		return err
	}
	*s = Service(a)
	s.Extra = extra
	return nil
}

// AvailableService is a Service annotated with the slots still open on a date.
type AvailableService struct {
	Service
	Available []string `json:"available"`
}

func (a AvailableService) MarshalJSON() ([]byte, error) {
	available := a.Available
	if available == nil {
		available = []string{}
	}
	base, err := json.Marshal(a.Service)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(base, &obj); err != nil {
		return nil, err
	}
	// a stored "available" field is stale by definition
	if obj["available"], err = json.Marshal(available); err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}
