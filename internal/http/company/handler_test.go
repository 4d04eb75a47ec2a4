package company_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	companyHttp "github.com/nicholasDWinters/biztime-exercise/internal/http/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

func newServer(t *testing.T) (*company.MockRepository, *invoice.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	companyRepo := company.NewMockRepository(ctrl)
	invoiceRepo := invoice.NewMockRepository(ctrl)

	companySvc := company.NewService(companyRepo)
	invoiceSvc := invoice.NewService(invoiceRepo, companySvc)

	r := chi.NewRouter()
	r.Route("/companies", companyHttp.NewHandler(companySvc, invoiceSvc).Routes)

	return companyRepo, invoiceRepo, r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHandler_List(t *testing.T) {
	companyRepo, _, h := newServer(t)

	companyRepo.EXPECT().
		ListCompanies(gomock.Any()).
		Return([]*company.Company{
			{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
			{Code: "ibm", Name: "IBM", Description: "Big blue."},
		}, nil)

	rec := doRequest(t, h, http.MethodGet, "/companies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Companies []map[string]any `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Companies, 2)
	assert.Equal(t, "apple", body.Companies[0]["code"])
	assert.Equal(t, "Apple Computer", body.Companies[0]["name"])
	assert.NotContains(t, body.Companies[0], "description")
}

func TestHandler_Get(t *testing.T) {
	t.Run("WithInvoices", func(t *testing.T) {
		companyRepo, invoiceRepo, h := newServer(t)

		companyRepo.EXPECT().
			GetCompany(gomock.Any(), "apple").
			Return(&company.Company{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."}, nil)
		invoiceRepo.EXPECT().
			ListByCompany(gomock.Any(), "apple").
			Return([]*invoice.Invoice{
				{ID: 1, CompCode: "apple", Amt: 100, AddDate: time.Now()},
			}, nil)

		rec := doRequest(t, h, http.MethodGet, "/companies/apple", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Company struct {
				Code     string           `json:"code"`
				Invoices []map[string]any `json:"invoices"`
			} `json:"company"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "apple", body.Company.Code)
		require.Len(t, body.Company.Invoices, 1)
		assert.Equal(t, float64(1), body.Company.Invoices[0]["id"])
	})

	t.Run("NoInvoicesIsEmptyArray", func(t *testing.T) {
		companyRepo, invoiceRepo, h := newServer(t)

		companyRepo.EXPECT().
			GetCompany(gomock.Any(), "ibm").
			Return(&company.Company{Code: "ibm", Name: "IBM"}, nil)
		invoiceRepo.EXPECT().
			ListByCompany(gomock.Any(), "ibm").
			Return(nil, nil)

		rec := doRequest(t, h, http.MethodGet, "/companies/ibm", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"invoices":[]`)
	})

	t.Run("NotFound", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			GetCompany(gomock.Any(), "nope").
			Return(nil, company.ErrNotFound)

		rec := doRequest(t, h, http.MethodGet, "/companies/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, http.StatusNotFound, env.Error.Status)
		assert.Equal(t, env.Error.Message, env.Message)
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			CreateCompany(gomock.Any(), gomock.Any()).
			Return(nil)

		rec := doRequest(t, h, http.MethodPost, "/companies",
			`{"code":"apple","name":"Apple Computer","description":"Maker of OSX."}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Company map[string]any `json:"company"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "apple", body.Company["code"])
	})

	t.Run("DerivesCodeFromName", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			CreateCompany(gomock.Any(), gomock.Any()).
			Return(nil)

		rec := doRequest(t, h, http.MethodPost, "/companies",
			`{"name":"Big Blue Inc.","description":"Mainframes."}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"bigblueinc"`)
	})

	t.Run("MissingName", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/companies", `{"description":"No name."}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "company needs a name", env.Message)
	})

	t.Run("MissingDescription", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/companies", `{"name":"Apple"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/companies", `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			UpdateCompany(gomock.Any(), "apple", "Apple Inc", "New.").
			Return(&company.Company{Code: "apple", Name: "Apple Inc", Description: "New."}, nil)

		rec := doRequest(t, h, http.MethodPatch, "/companies/apple",
			`{"name":"Apple Inc","description":"New."}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Apple Inc"`)
	})

	t.Run("CodeIsImmutable", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPatch, "/companies/apple",
			`{"code":"other","name":"Apple Inc","description":"New."}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "not allowed: code is immutable", env.Message)
	})

	t.Run("EmptyCodeStillRejected", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPatch, "/companies/apple",
			`{"code":"","name":"Apple Inc","description":"New."}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "immutable")
	})

	t.Run("NotFound", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			UpdateCompany(gomock.Any(), "nope", "X", "Y").
			Return(nil, company.ErrNotFound)

		rec := doRequest(t, h, http.MethodPatch, "/companies/nope",
			`{"name":"X","description":"Y"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			DeleteCompany(gomock.Any(), "apple").
			Return(nil)

		rec := doRequest(t, h, http.MethodDelete, "/companies/apple", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		companyRepo, _, h := newServer(t)

		companyRepo.EXPECT().
			DeleteCompany(gomock.Any(), "nope").
			Return(company.ErrNotFound)

		rec := doRequest(t, h, http.MethodDelete, "/companies/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, http.StatusNotFound, env.Error.Status)
	})
}
