package industry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	industryHttp "github.com/nicholasDWinters/biztime-exercise/internal/http/industry"
	"github.com/nicholasDWinters/biztime-exercise/internal/industry"
)

func newServer(t *testing.T) (*industry.MockRepository, *industry.MockCompanyDirectory, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := industry.NewMockRepository(ctrl)
	dir := industry.NewMockCompanyDirectory(ctrl)
	svc := industry.NewService(repo, dir)

	r := chi.NewRouter()
	r.Route("/industries", industryHttp.NewHandler(svc).Routes)

	return repo, dir, r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func strPtr(s string) *string { return &s }

func TestHandler_List(t *testing.T) {
	repo, _, h := newServer(t)

	repo.EXPECT().
		ListMemberships(gomock.Any()).
		Return([]industry.Membership{
			{Industry: "Technology", Company: strPtr("Apple Computer")},
			{Industry: "Technology", Company: strPtr("IBM")},
			{Industry: "Accounting", Company: nil},
		}, nil)

	rec := doRequest(t, h, http.MethodGet, "/industries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Industries map[string]struct {
			Companies []string `json:"companies"`
		} `json:"industries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Industries, 2)
	assert.Equal(t, []string{"Apple Computer", "IBM"}, body.Industries["Technology"].Companies)
	assert.Equal(t, []string{}, body.Industries["Accounting"].Companies)
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, _, h := newServer(t)

		repo.EXPECT().
			CreateIndustry(gomock.Any(), gomock.Any()).
			Return(nil)

		rec := doRequest(t, h, http.MethodPost, "/industries", `{"code":"tech","industry":"Technology"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"industry":{"code":"tech","industry":"Technology"}}`, rec.Body.String())
	})

	t.Run("MissingCode", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/industries", `{"industry":"Technology"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "industry needs a code")
	})

	t.Run("MissingName", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/industries", `{"code":"tech"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "industry needs a name")
	})
}

func TestHandler_AddCompany(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, dir, h := newServer(t)

		dir.EXPECT().
			Get(gomock.Any(), "apple").
			Return(&company.Company{Code: "apple"}, nil)
		repo.EXPECT().
			GetIndustry(gomock.Any(), "tech").
			Return(&industry.Industry{Code: "tech", Name: "Technology"}, nil)
		repo.EXPECT().
			AddCompany(gomock.Any(), "apple", "tech").
			Return(nil)

		rec := doRequest(t, h, http.MethodPost, "/industries/company",
			`{"com_code":"apple","industry_code":"tech"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"status":"added relationship"}`, rec.Body.String())
	})

	t.Run("UnknownCompanyIs404", func(t *testing.T) {
		_, dir, h := newServer(t)

		dir.EXPECT().
			Get(gomock.Any(), "nope").
			Return(nil, company.ErrNotFound)

		rec := doRequest(t, h, http.MethodPost, "/industries/company",
			`{"com_code":"nope","industry_code":"tech"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no company with code")
	})

	t.Run("UnknownIndustryIs404", func(t *testing.T) {
		repo, dir, h := newServer(t)

		dir.EXPECT().
			Get(gomock.Any(), "apple").
			Return(&company.Company{Code: "apple"}, nil)
		repo.EXPECT().
			GetIndustry(gomock.Any(), "nope").
			Return(nil, industry.ErrNotFound)

		rec := doRequest(t, h, http.MethodPost, "/industries/company",
			`{"com_code":"apple","industry_code":"nope"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no industry with code")
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := doRequest(t, h, http.MethodPost, "/industries/company", `{"industry_code":"tech"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
