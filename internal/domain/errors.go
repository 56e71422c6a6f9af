package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrBusy            = errors.New("operation already in progress")
	ErrMissingAPIKey   = errors.New("copywriting api key is not configured")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrInvalidSlot     = errors.New("invalid snapshot slot name")
	ErrProviderFailure = errors.New("provider failure")
)
