package company

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/http/httperr"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type Handler struct {
	companies *company.Service
	invoices  *invoice.Service
}

func NewHandler(companies *company.Service, invoices *invoice.Service) *Handler {
	return &Handler{companies: companies, invoices: invoices}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{code}", h.get)
	r.Patch("/{code}", h.update)
	r.Delete("/{code}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	httperr.JSON(w, http.StatusOK, listResponse{Companies: toSummaryList(companies)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	c, err := h.companies.Get(r.Context(), code)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no company with code %q", code))
			return
		}

		httperr.Write(w, err)

		return
	}

	invs, err := h.invoices.ListByCompany(r.Context(), code)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	httperr.JSON(w, http.StatusOK, detailEnvelope{Company: toDetailResponse(c, invs)})
}

type createCompanyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.Name == "" {
		httperr.Write(w, httperr.BadRequestf("company needs a name"))
		return
	}

	if req.Description == "" {
		httperr.Write(w, httperr.BadRequestf("company needs a description"))
		return
	}

	c, err := h.companies.Create(r.Context(), company.CreateParams{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	httperr.JSON(w, http.StatusCreated, companyEnvelope{Company: toResponse(c)})
}

// updateCompanyRequest uses a pointer for the immutable code field so
// its presence in the payload is detected structurally; even code:""
// is rejected.
type updateCompanyRequest struct {
	Code        *string `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.Code != nil {
		httperr.Write(w, httperr.BadRequestf("not allowed: code is immutable"))
		return
	}

	if req.Name == "" {
		httperr.Write(w, httperr.BadRequestf("company needs a name"))
		return
	}

	if req.Description == "" {
		httperr.Write(w, httperr.BadRequestf("company needs a description"))
		return
	}

	c, err := h.companies.Update(r.Context(), code, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no company with code %q", code))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusOK, companyEnvelope{Company: toResponse(c)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.companies.Delete(r.Context(), code); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no company with code %q", code))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
