package invoice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nicholasDWinters/biztime-exercise/internal/http/httperr"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func invoiceID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.BadRequestf("invalid invoice id %q", raw)
	}

	return id, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	httperr.JSON(w, http.StatusOK, listResponse{Invoices: toSummaryList(invs)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no invoice with id %d", id))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusOK, detailEnvelope{Invoice: toDetailResponse(inv)})
}

type createInvoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.CompCode == "" {
		httperr.Write(w, httperr.BadRequestf("invoice needs a company code"))
		return
	}

	// A zero amount reads as absent; the schema rejects it anyway.
	if req.Amt == 0 {
		httperr.Write(w, httperr.BadRequestf("invoice needs an amount"))
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		var unknown *invoice.UnknownCompanyError
		if errors.As(err, &unknown) {
			httperr.Write(w, httperr.NotFoundf("%s", unknown.Error()))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusCreated, invoiceEnvelope{Invoice: toResponse(inv)})
}

// updateInvoiceRequest uses a pointer for the immutable id field so
// its presence in the payload is detected structurally; even id:0 is
// rejected.
type updateInvoiceRequest struct {
	ID  *int    `json:"id"`
	Amt float64 `json:"amt"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.BadRequestf("invalid request body: %v", err))
		return
	}

	if req.ID != nil {
		httperr.Write(w, httperr.BadRequestf("not allowed: id is immutable"))
		return
	}

	if req.Amt == 0 {
		httperr.Write(w, httperr.BadRequestf("invoice needs an amount"))
		return
	}

	inv, err := h.svc.UpdateAmount(r.Context(), id, req.Amt)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no invoice with id %d", id))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusOK, invoiceEnvelope{Invoice: toResponse(inv)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			httperr.Write(w, httperr.NotFoundf("no invoice with id %d", id))
			return
		}

		httperr.Write(w, err)

		return
	}

	httperr.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
