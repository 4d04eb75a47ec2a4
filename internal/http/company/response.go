package company

import (
	"time"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type listResponse struct {
	Companies []companySummary `json:"companies"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type companySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type companyEnvelope struct {
	Company companyResponse `json:"company"`
}

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type detailEnvelope struct {
	Company companyDetail `json:"company"`
}

type companyDetail struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Invoices    []invoiceResponse `json:"invoices"`
}

type invoiceResponse struct {
	ID       int        `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

func toSummaryList(companies []*company.Company) []companySummary {
	out := make([]companySummary, len(companies))
	for i, c := range companies {
		out[i] = companySummary{Code: c.Code, Name: c.Name}
	}

	return out
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toDetailResponse(c *company.Company, invs []*invoice.Invoice) companyDetail {
	detail := companyDetail{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    make([]invoiceResponse, 0, len(invs)),
	}

	for _, inv := range invs {
		detail.Invoices = append(detail.Invoices, invoiceResponse{
			ID:       inv.ID,
			CompCode: inv.CompCode,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
		})
	}

	return detail
}
