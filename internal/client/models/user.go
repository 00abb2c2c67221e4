// Package models defines the client-side data models of the emergency15 CLI:
// the persisted user record, request payloads and incident cases.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// User is the authenticated identity persisted under the auth key.
// Its JSON form is the persisted record and must stay stable.
type User struct {
	Token         string     `json:"token" validate:"required"`
	ID            int64      `json:"id" validate:"gt=0"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	CNIC          *string    `json:"cnic"`
	Email         string     `json:"email"`
	IsActive      FlexString `json:"is_active"`
	SuperAdmin    FlexString `json:"super_admin"`
	Username      *string    `json:"username"`
	ContactNumber string     `json:"contact_number" validate:"required"`
}

// DisplayName is "First Last", or the contact number when both are empty.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.ContactNumber
	}
}

// Clone returns a copy of u that shares no pointers with it.
func (u User) Clone() User {
	if u.CNIC != nil {
		cnic := *u.CNIC
		u.CNIC = &cnic
	}
	if u.Username != nil {
		name := *u.Username
		u.Username = &name
	}
	return u
}

// ProfilePatch holds the user-editable profile fields. Nil fields are left
// unchanged by Apply.
type ProfilePatch struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitnil,min=1,alpha"`
	LastName  *string `json:"last_name,omitempty" validate:"omitnil,min=1,alpha"`
	Email     *string `json:"email,omitempty" validate:"omitnil,email"`
	CNIC      *string `json:"cnic,omitempty" validate:"omitnil,min=13"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.CNIC == nil
}

// Apply returns a copy of u with the non-nil fields of p merged in.
// Token, ID and the remaining fields are kept.
func (p ProfilePatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.CNIC != nil {
		cnic := *p.CNIC
		u.CNIC = &cnic
	}
	return u
}

// FlexString decodes a JSON string or number into a string. The backend
// is not consistent about flag fields such as is_active.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		var v bool
		if berr := json.Unmarshal(b, &v); berr != nil {
			return err
		}
		*s = FlexString(strconv.FormatBool(v))
		return nil
	}
	*s = FlexString(n.String())
	return nil
}
