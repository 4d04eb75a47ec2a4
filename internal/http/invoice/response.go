package invoice

import (
	"time"

	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type listResponse struct {
	Invoices []invoiceSummary `json:"invoices"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type invoiceSummary struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

type invoiceEnvelope struct {
	Invoice invoiceResponse `json:"invoice"`
}

type invoiceResponse struct {
	ID       int        `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type detailEnvelope struct {
	Invoice invoiceDetail `json:"invoice"`
}

// invoiceDetail embeds a reduced projection of the owning company
// instead of the bare foreign key.
type invoiceDetail struct {
	ID       int             `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  companyResponse `json:"company"`
}

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toSummaryList(invs []*invoice.Invoice) []invoiceSummary {
	out := make([]invoiceSummary, len(invs))
	for i, inv := range invs {
		out[i] = invoiceSummary{ID: inv.ID, CompCode: inv.CompCode}
	}

	return out
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

func toDetailResponse(inv *invoice.Invoice) invoiceDetail {
	detail := invoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}

	if inv.Company != nil {
		detail.Company = companyResponse{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		}
	}

	return detail
}
