package service

import "errors"

var (
	// ErrValidation marks a rejected request: nothing was persisted and
	// no partial state change happened. Wrapped with detail via
	// fmt.Errorf("%w: ...").
	ErrValidation = errors.New("validation failed")

	// ErrPermissionDenied marks a mutation attempted without the
	// configuration-mutation capability.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrLastFounder rejects removal of the sole remaining founder.
	ErrLastFounder = errors.New("cannot remove the last founder")
)
