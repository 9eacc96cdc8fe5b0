package domain

import (
	"errors"
	"fmt"
)

// ErrBlacklisted is returned when a contract is attempted for a client or
// driver with an active blacklist entry.
var ErrBlacklisted = errors.New("client or driver is blacklisted")

// ErrUnauthorized is returned when a record belongs to a different partner
// than the one performing the operation.
var ErrUnauthorized = errors.New("unauthorized")

// MissingFieldError reports the first absent mandatory field of a contract
// draft. The field name is stable and suitable for inline form errors.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NotFoundError reports a reference that could not be resolved, e.g. a
// vehicle id that matches no vehicle in the partner's fleet.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mf *MissingFieldError
	return errors.As(err, &mf)
}
