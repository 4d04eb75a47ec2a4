package invoice

import (
	"time"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

// Invoice is a bill issued to a company. ID is assigned by the
// database and never changes; CompCode is fixed at creation.
type Invoice struct {
	ID       int
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
	Company  *company.Company // populated on single-invoice reads
}
