package models

import (
	"encoding/json"
	"errors"
	"time"
)

type Designation string

const (
	DesignationAdmin    Designation = "admin"
	DesignationHR       Designation = "hr"
	DesignationEmployee Designation = "employee"
)

var ErrInvalidDesignation = errors.New("designation must be one of admin, hr, employee")

func (d Designation) Valid() bool {
	switch d {
	case DesignationAdmin, DesignationHR, DesignationEmployee:
		return true
	}
	return false
}

// User is an employee record. Fields other than the typed ones are kept in
// Attributes and flattened back into the JSON object.
type User struct {
	ID          string      `db:"id"`
	Email       string      `db:"email"`
	Designation Designation `db:"designation"`
	Status      bool        `db:"status"`
	Fired       bool        `db:"fired"`
	Attributes  Document    `db:"attributes"`
	CreatedAt   time.Time   `db:"created_at"`
}

var userKeys = []string{"_id", "email", "designation", "status", "fired"}

func (u User) MarshalJSON() ([]byte, error) {
	out := u.Attributes.Clone(userKeys...)
	out["_id"] = u.ID
	out["email"] = u.Email
	out["designation"] = u.Designation
	out["status"] = u.Status
	out["fired"] = u.Fired
	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(data []byte) error {
	doc, err := DecodeDocument(data)
	if err != nil {
		return err
	}

	var user User
	if v, ok := doc["_id"].(string); ok {
		user.ID = v
	}
	if v, ok := doc["email"].(string); ok {
		user.Email = v
	}
	if v, ok := doc["designation"].(string); ok {
		user.Designation = Designation(v)
	}
	if v, ok := doc["status"].(bool); ok {
		user.Status = v
	}
	if v, ok := doc["fired"].(bool); ok {
		user.Fired = v
	}
	user.Attributes = doc.Clone(userKeys...)

	*u = user
	return nil
}

// HasDesignation reports whether the user holds the given role.
func (u *User) HasDesignation(d Designation) bool {
	return u != nil && u.Designation == d
}
