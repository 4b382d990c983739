package domain

import "errors"

var (
	// ErrStoreUnavailable signals that the catalog store rejected or could not serve a call.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrInvalidFilter signals a filter expression that cannot be built.
	ErrInvalidFilter = errors.New("invalid filter")
)
