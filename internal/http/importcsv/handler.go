package importcsv

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nicholasDWinters/biztime-exercise/internal/http/httperr"
	"github.com/nicholasDWinters/biztime-exercise/internal/importer"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

// maxUploadBytes caps the multipart form held in memory.
const maxUploadBytes = 10 << 20

type Handler struct {
	invoices *invoice.Service
}

func NewHandler(invoices *invoice.Service) *Handler {
	return &Handler{invoices: invoices}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int               `json:"imported"`
	Invoices []invoiceResponse `json:"invoices"`
}

type invoiceResponse struct {
	ID       int        `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httperr.Write(w, httperr.BadRequestf("failed to parse form: %v", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		httperr.Write(w, httperr.BadRequestf("file field is required"))
		return
	}
	defer file.Close()

	params, err := importer.Parse(file)
	if err != nil {
		httperr.Write(w, httperr.BadRequestf("%s", err.Error()))
		return
	}

	invs, err := h.invoices.CreateBatch(r.Context(), params)
	if err != nil {
		var unknown *invoice.UnknownCompanyError
		if errors.As(err, &unknown) {
			httperr.Write(w, httperr.NotFoundf("%s", unknown.Error()))
			return
		}

		httperr.Write(w, err)

		return
	}

	resp := importResponse{
		Imported: len(invs),
		Invoices: make([]invoiceResponse, 0, len(invs)),
	}
	for _, inv := range invs {
		resp.Invoices = append(resp.Invoices, invoiceResponse{
			ID:       inv.ID,
			CompCode: inv.CompCode,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
		})
	}

	httperr.JSON(w, http.StatusCreated, resp)
}
