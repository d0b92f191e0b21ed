package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// statuses with errors.Is; anything outside this set is an unexpected store
// failure and must not be reported as one of them.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrConflict        = errors.New("conflict")
)

// notFoundOr maps gorm's record-not-found to ErrNotFound and leaves every
// other error untouched, so store faults never masquerade as empty results.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
