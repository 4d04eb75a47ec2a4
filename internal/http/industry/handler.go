package industry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/http/httperr"
	"github.com/nicholasDWinters/biztime-exercise/internal/industry"
)

type Handler struct {
	svc *industry.Service
}

func NewHandler(svc *industry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/company", h.addCompany)
}

type industryGroup struct {
	Companies []string `json:"companies"`
}

type listResponse struct {
	Industries map[string]industryGroup `json:"industries"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.svc.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	industries := make(map[string]industryGroup, len(grouped))
	for name, companies := range grouped {
		industries[name] = industryGroup{Companies: companies}
	}

	httperr.JSON(w, http.StatusOK, listResponse{Industries: industries})
}

type createIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type industryEnvelope struct {
	Industry industryResponse `json:"industry"`
}

type industryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.Code == "" {
		httperr.Write(w, httperr.BadRequestf("industry needs a code"))
		return
	}

	if req.Industry == "" {
		httperr.Write(w, httperr.BadRequestf("industry needs a name"))
		return
	}

	ind, err := h.svc.Create(r.Context(), req.Code, req.Industry)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	httperr.JSON(w, http.StatusCreated, industryEnvelope{
		Industry: industryResponse{Code: ind.Code, Industry: ind.Name},
	})
}

type addCompanyRequest struct {
	ComCode      string `json:"com_code"`
	IndustryCode string `json:"industry_code"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (h *Handler) addCompany(w http.ResponseWriter, r *http.Request) {
	var req addCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.ComCode == "" {
		httperr.Write(w, httperr.BadRequestf("association needs a company code"))
		return
	}

	if req.IndustryCode == "" {
		httperr.Write(w, httperr.BadRequestf("association needs an industry code"))
		return
	}

	if err := h.svc.AddCompany(r.Context(), req.ComCode, req.IndustryCode); err != nil {
		switch {
		case errors.Is(err, company.ErrNotFound):
			httperr.Write(w, httperr.NotFoundf("no company with code %q", req.ComCode))
		case errors.Is(err, industry.ErrNotFound):
			httperr.Write(w, httperr.NotFoundf("no industry with code %q", req.IndustryCode))
		default:
			httperr.Write(w, err)
		}

		return
	}

	httperr.JSON(w, http.StatusCreated, statusResponse{Status: "added relationship"})
}
