package preview_service_import

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/csvimport"
	previewServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/preview_service_import"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeUseCase struct {
	got  *previewServiceImport.Request
	resp *previewServiceImport.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *previewServiceImport.Request) (*previewServiceImport.Response, error) {
	f.got = req
	return f.resp, f.err
}

// multipartBody builds a form with an optional file and extra fields
func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if filename != "" {
		part, err := w.CreateFormFile(formFileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func serve(t *testing.T, uc PreviewServiceImportUseCase, maxFileSize int64, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.Handle("/api/v1/companies/{companyId}/services/import/preview",
		middleware.Auth(http.HandlerFunc(NewHandler(uc, maxFileSize, logger.NewNop()).Handle))).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &previewServiceImport.Response{
		BatchID:   "batch-1",
		CompanyID: 3,
		Filename:  "services.csv",
		Headers:   []string{"Treatment", "Length"},
		Mapping:   csvimport.Mapping{csvimport.FieldName: "Treatment", csvimport.FieldDuration: "Length"},
		Rows: []csvimport.MappedServiceRow{
			{RowNumber: 1, Name: "Gel nails", Duration: 45, Price: 25, Errors: []string{}},
			{RowNumber: 2, Name: "", Duration: math.NaN(), Price: math.NaN(), Errors: []string{"Name is required"}},
		},
		Summary:         csvimport.Summary{Total: 2, Valid: 1, Error: 1},
		ImportableCount: 1,
	}}

	body, contentType := multipartBody(t, "services.csv", []byte("Treatment,Length\nGel nails,45\n"), nil)
	rec := serve(t, uc, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, int64(42), uc.got.UserID)
	assert.Equal(t, int64(3), uc.got.CompanyID)
	assert.Equal(t, "services.csv", uc.got.Filename)
	assert.True(t, uc.got.SkipDuplicates, "skipDuplicates defaults to true")
	assert.Equal(t, "Treatment,Length\nGel nails,45\n", string(uc.got.Data))

	var resp PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "batch-1", resp.BatchID)
	assert.Equal(t, "Treatment", resp.Mapping["name"])
	assert.Equal(t, 1, resp.ImportableCount)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, csvimport.StatusValid, resp.Rows[0].Status)
	require.NotNil(t, resp.Rows[0].Duration)
	assert.Equal(t, 45.0, *resp.Rows[0].Duration)
	assert.Nil(t, resp.Rows[1].Duration)
	assert.Nil(t, resp.Rows[1].Price)
	assert.False(t, resp.Rows[1].IsValid)
}

func TestHandle_SkipDuplicatesFlag(t *testing.T) {
	uc := &fakeUseCase{resp: &previewServiceImport.Response{}}

	body, contentType := multipartBody(t, "a.csv", []byte("name\nA\n"), map[string]string{formSkipDuplicates: "false"})
	rec := serve(t, uc, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, uc.got.SkipDuplicates)

	body, contentType = multipartBody(t, "a.csv", []byte("name\nA\n"), map[string]string{formSkipDuplicates: "maybe"})
	rec = serve(t, uc, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RequestErrors(t *testing.T) {
	t.Run("invalid company", func(t *testing.T) {
		body, contentType := multipartBody(t, "a.csv", []byte("name\nA\n"), nil)
		rec := serve(t, &fakeUseCase{}, 1024, "/api/v1/companies/x/services/import/preview", body, contentType)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		body, contentType := multipartBody(t, "", nil, map[string]string{"other": "1"})
		rec := serve(t, &fakeUseCase{}, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		rec := serve(t, &fakeUseCase{}, 1024, "/api/v1/companies/3/services/import/preview", bytes.NewBufferString("{}"), "application/json")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		body, contentType := multipartBody(t, "a.csv", bytes.Repeat([]byte("a"), 2*multipartOverhead), nil)
		rec := serve(t, &fakeUseCase{}, 16, "/api/v1/companies/3/services/import/preview", body, contentType)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "too large", err: previewServiceImport.ErrFileTooLarge, wantStatus: http.StatusRequestEntityTooLarge},
		{name: "unreadable", err: previewServiceImport.ErrUnreadableFile, wantStatus: http.StatusUnprocessableEntity},
		{name: "invalid input", err: previewServiceImport.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: previewServiceImport.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, "a.csv", []byte("name\nA\n"), nil)
			rec := serve(t, &fakeUseCase{err: tt.err}, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_NameColumnNotFound(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("preview: %w", &previewServiceImport.NameColumnError{Headers: []string{"Foo", "Price"}})}

	body, contentType := multipartBody(t, "a.csv", []byte("Foo,Price\nx,1\n"), nil)
	rec := serve(t, uc, 1024, "/api/v1/companies/3/services/import/preview", body, contentType)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "[Foo, Price]")
}

func TestHandle_Unauthorized(t *testing.T) {
	body, contentType := multipartBody(t, "a.csv", []byte("name\nA\n"), nil)

	r := mux.NewRouter()
	r.Handle("/api/v1/companies/{companyId}/services/import/preview",
		middleware.Auth(http.HandlerFunc(NewHandler(&fakeUseCase{}, 1024, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/3/services/import/preview", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
