package importcsv_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
	importcsvHttp "github.com/nicholasDWinters/biztime-exercise/internal/http/importcsv"
	"github.com/nicholasDWinters/biztime-exercise/internal/invoice"
)

func newServer(t *testing.T) (*invoice.MockRepository, *invoice.MockCompanyDirectory, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := invoice.NewMockRepository(ctrl)
	dir := invoice.NewMockCompanyDirectory(ctrl)
	svc := invoice.NewService(repo, dir)

	r := chi.NewRouter()
	r.Route("/import", importcsvHttp.NewHandler(svc).Routes)

	return repo, dir, r
}

func uploadCSV(t *testing.T, h http.Handler, csvBody string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "invoices.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Import(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, dir, h := newServer(t)

		dir.EXPECT().
			Get(gomock.Any(), "apple").
			Return(&company.Company{Code: "apple"}, nil)
		repo.EXPECT().
			CreateInvoices(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ context.Context, invs []*invoice.Invoice) error {
				for i, inv := range invs {
					inv.ID = i + 1
				}
				return nil
			})

		rec := uploadCSV(t, h, "comp_code;amt;paid\napple;1.234,56;true\napple;99,00;false\n")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imported":2`)
		assert.Contains(t, rec.Body.String(), `"amt":1234.56`)
	})

	t.Run("UnknownCompanyIs404", func(t *testing.T) {
		_, dir, h := newServer(t)

		dir.EXPECT().
			Get(gomock.Any(), "nope").
			Return(nil, company.ErrNotFound)

		rec := uploadCSV(t, h, "comp_code;amt\nnope;10,00\n")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadRowIs400", func(t *testing.T) {
		_, _, h := newServer(t)

		rec := uploadCSV(t, h, "comp_code;amt\napple;not-a-number\n")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "line 2")
	})

	t.Run("MissingFileField", func(t *testing.T) {
		_, _, h := newServer(t)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "file field is required")
	})
}
