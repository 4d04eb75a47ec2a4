package company

import "errors"

// ErrNotFound is returned when no company matches the requested code.
var ErrNotFound = errors.New("company not found")
