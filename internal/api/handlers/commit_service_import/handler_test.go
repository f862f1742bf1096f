package commit_service_import

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	commitServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/commit_service_import"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeUseCase struct {
	got  *commitServiceImport.Request
	resp *commitServiceImport.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *commitServiceImport.Request) (*commitServiceImport.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(t *testing.T, uc CommitServiceImportUseCase, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.Handle("/api/v1/companies/{companyId}/services/import",
		middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.NewNop()).Handle))).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, "7")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &commitServiceImport.Response{
		BatchID:   "batch-1",
		CompanyID: 3,
		Created:   1,
		Skipped:   1,
		Results: []commitServiceImport.RowResult{
			{RowNumber: 1, Name: "Gel nails", Status: commitServiceImport.StatusCreated, ServiceID: ptr.Ptr(int64(11))},
			{RowNumber: 2, Name: "Haircut", Status: commitServiceImport.StatusSkipped, Errors: []string{"Service with this name already exists"}},
		},
	}}

	body := `{"batchId":"batch-1","rows":[
		{"rowNumber":1,"name":"Gel nails","category":"Nails","duration":45,"price":25},
		{"rowNumber":2,"name":"Haircut","duration":30,"price":20,"description":"Short"}
	]}`
	rec := serve(t, uc, "/api/v1/companies/3/services/import", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, int64(7), uc.got.UserID)
	assert.Equal(t, int64(3), uc.got.CompanyID)
	assert.Equal(t, "batch-1", uc.got.BatchID)
	assert.True(t, uc.got.SkipDuplicates, "skipDuplicates defaults to true")
	require.Len(t, uc.got.Rows, 2)
	require.NotNil(t, uc.got.Rows[0].Duration)
	assert.Equal(t, 45.0, *uc.got.Rows[0].Duration)
	assert.Equal(t, "Short", uc.got.Rows[1].Description)

	var resp CommitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Results, 2)
	require.NotNil(t, resp.Results[0].ServiceID)
	assert.Equal(t, int64(11), *resp.Results[0].ServiceID)
	assert.NotNil(t, resp.Results[0].Errors)
	assert.Nil(t, resp.Results[1].ServiceID)
}

func TestHandle_SkipDuplicatesFalse(t *testing.T) {
	uc := &fakeUseCase{resp: &commitServiceImport.Response{}}

	rec := serve(t, uc, "/api/v1/companies/3/services/import", `{"skipDuplicates":false,"rows":[{"name":"A"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, uc.got.SkipDuplicates)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "company id", target: "/api/v1/companies/0/services/import", body: `{"rows":[{"name":"A"}]}`},
		{name: "malformed json", target: "/api/v1/companies/3/services/import", body: `{"rows":`},
		{name: "unknown field", target: "/api/v1/companies/3/services/import", body: `{"rows":[{"name":"A"}],"extra":1}`},
		{name: "no rows", target: "/api/v1/companies/3/services/import", body: `{"rows":[]}`},
		{name: "missing rows", target: "/api/v1/companies/3/services/import", body: `{}`},
		{name: "negative row number", target: "/api/v1/companies/3/services/import", body: `{"rows":[{"rowNumber":-1,"name":"A"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: commitServiceImport.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: commitServiceImport.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, "/api/v1/companies/3/services/import", `{"rows":[{"name":"A"}]}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
