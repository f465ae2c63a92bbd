package inventory

import "errors"

// Inventory errors that can be checked with errors.Is()
var (
	// ErrNotFound is returned when a lookup matches nothing
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfiguration is returned for construction input outside the
	// accepted set, such as an unknown disk kind
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
