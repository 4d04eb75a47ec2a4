package industry

import "errors"

// ErrNotFound is returned when no industry matches the requested code.
var ErrNotFound = errors.New("industry not found")
