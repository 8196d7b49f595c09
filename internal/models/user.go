package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is keyed by UID, the subject issued by the external identity provider.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	UID   string                 `bson:"uid" json:"uid"`
	Role  string                 `bson:"role,omitempty" json:"role,omitempty"` // "user" or "admin"
	Name  string                 `bson:"name,omitempty" json:"name,omitempty"`
	Email string                 `bson:"email,omitempty" json:"email,omitempty"`
	Extra map[string]interface{} `bson:",inline" json:"-"`
}

var userFields = []string{"_id", "uid", "role", "name", "email"}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	return marshalWithExtra(alias(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, userFields...)
	if err != nil {
		return err
	}
	*u = User(a)
	u.Extra = extra
	return nil
}
