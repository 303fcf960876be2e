// Package uuid wraps google/uuid for binding path parameters with gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// From wraps a google/uuid UUID.
func From(u google_uuid.UUID) UUID {
	return UUID{u}
}

// Parse parses a UUID string. The empty string parses to Nil.
func Parse(s string) (UUID, error) {
	var u UUID
	err := u.UnmarshalParam(s)
	return u, err
}

// UnmarshalParam implements gin's BindUnmarshaler for path and
// query parameters.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalidUUID
	}

	*u = UUID{parsed}
	return nil
}
