package invoice

import (
	"errors"
	"fmt"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

// ErrNotFound is returned when no invoice matches the requested id.
var ErrNotFound = errors.New("invoice not found")

// UnknownCompanyError reports an invoice referencing a company code
// that does not exist. It carries the code so bulk operations can name
// the offending reference.
type UnknownCompanyError struct {
	Code string
}

func (e *UnknownCompanyError) Error() string {
	return fmt.Sprintf("no company with code %q", e.Code)
}

func (e *UnknownCompanyError) Unwrap() error { return company.ErrNotFound }
