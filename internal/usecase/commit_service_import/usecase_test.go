package commit_service_import

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// fakeServiceRepo emulates the unique index on active names
type fakeServiceRepo struct {
	names     []string
	created   []*domain.Service
	listErr   error
	createErr error
	nextID    int64
}

func (f *fakeServiceRepo) ListActiveNames(_ context.Context, _ int64) ([]string, error) {
	return f.names, f.listErr
}

func (f *fakeServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, n := range f.names {
		if domain.NormalizeServiceName(n) == s.NormalizedName() {
			return nil, fmt.Errorf("%w: %q", serviceRepo.ErrDuplicateService, s.Name)
		}
	}
	f.nextID++
	s.ID = f.nextID
	f.names = append(f.names, s.Name)
	f.created = append(f.created, s)
	return s, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	counts map[string]int
}

func (f *fakeMetrics) RecordImportRows(stage, status string, count int) {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	f.counts[stage+"/"+status] += count
}

func newTestUseCase(repo ServiceRepository, tx TxManager, m MetricsRecorder) *UseCase {
	uc := NewUseCase(repo, tx, m, logger.NewNop())
	uc.newBatchID = func() string { return "generated" }
	return uc
}

func TestExecute(t *testing.T) {
	repo := &fakeServiceRepo{names: []string{"Haircut"}}
	tx := &fakeTxManager{}
	m := &fakeMetrics{}

	resp, err := newTestUseCase(repo, tx, m).Execute(context.Background(), &Request{
		CompanyID:      4,
		BatchID:        "batch-7",
		SkipDuplicates: true,
		Rows: []RowInput{
			{RowNumber: 1, Name: "Gel nails", Category: "Nails", Duration: ptr.Ptr(45.0), Price: ptr.Ptr(25.0)},
			{RowNumber: 2, Name: " haircut ", Duration: ptr.Ptr(30.0), Price: ptr.Ptr(20.0)},
			{RowNumber: 3, Name: "", Duration: ptr.Ptr(2.0), Price: ptr.Ptr(20.0)},
			{RowNumber: 4, Name: "GEL NAILS", Duration: ptr.Ptr(45.0), Price: ptr.Ptr(25.0)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "batch-7", resp.BatchID)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 2, resp.Skipped)
	assert.Equal(t, 1, resp.Failed)

	require.Len(t, resp.Results, 4)
	assert.Equal(t, StatusCreated, resp.Results[0].Status)
	require.NotNil(t, resp.Results[0].ServiceID)
	assert.Equal(t, int64(1), *resp.Results[0].ServiceID)
	assert.Equal(t, StatusSkipped, resp.Results[1].Status)
	assert.Equal(t, StatusError, resp.Results[2].Status)
	assert.Len(t, resp.Results[2].Errors, 2)
	assert.Equal(t, StatusSkipped, resp.Results[3].Status, "duplicate inside the file")

	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(4), repo.created[0].CompanyID)
	assert.Equal(t, 45, repo.created[0].DurationMinutes)
	require.NotNil(t, repo.created[0].Category)
	assert.Equal(t, "Nails", *repo.created[0].Category)
	assert.Nil(t, repo.created[0].Description)

	assert.Equal(t, 1, m.counts["commit/created"])
	assert.Equal(t, 2, m.counts["commit/skipped"])
	assert.Equal(t, 1, m.counts["commit/error"])
}

func TestExecute_DuplicatesNotSkippedBecomeErrors(t *testing.T) {
	repo := &fakeServiceRepo{names: []string{"Haircut"}}

	resp, err := newTestUseCase(repo, &fakeTxManager{}, nil).Execute(context.Background(), &Request{
		CompanyID: 4,
		Rows: []RowInput{
			{Name: "Haircut", Duration: ptr.Ptr(30.0), Price: ptr.Ptr(20.0)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "generated", resp.BatchID)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, resp.Results[0].RowNumber)
	assert.Equal(t, []string{msgAlreadyExists}, resp.Results[0].Errors)
}

func TestExecute_RevalidatesValues(t *testing.T) {
	repo := &fakeServiceRepo{}

	resp, err := newTestUseCase(repo, &fakeTxManager{}, nil).Execute(context.Background(), &Request{
		CompanyID: 4,
		Rows: []RowInput{
			{Name: "Fractional", Duration: ptr.Ptr(30.5), Price: ptr.Ptr(10.0)},
			{Name: "No price", Duration: ptr.Ptr(30.0)},
			{Name: "Too long", Duration: ptr.Ptr(481.0), Price: ptr.Ptr(10.0)},
			{Name: "Free", Duration: ptr.Ptr(5.0), Price: ptr.Ptr(0.0)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Failed)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, "Free", repo.created[0].Name)
}

func TestExecute_Errors(t *testing.T) {
	validRow := RowInput{Name: "A", Duration: ptr.Ptr(30.0), Price: ptr.Ptr(1.0)}

	tests := []struct {
		name    string
		req     *Request
		repo    *fakeServiceRepo
		wantErr error
	}{
		{
			name:    "invalid company",
			req:     &Request{Rows: []RowInput{validRow}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no rows",
			req:     &Request{CompanyID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "too many rows",
			req:     &Request{CompanyID: 1, Rows: make([]RowInput, domain.MaxImportRows+1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "list failure",
			req:     &Request{CompanyID: 1, Rows: []RowInput{validRow}},
			repo:    &fakeServiceRepo{listErr: errors.New("db down")},
			wantErr: ErrInternal,
		},
		{
			name:    "create failure",
			req:     &Request{CompanyID: 1, Rows: []RowInput{validRow}},
			repo:    &fakeServiceRepo{createErr: serviceRepo.ErrExecQuery},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.repo
			if repo == nil {
				repo = &fakeServiceRepo{}
			}

			resp, err := newTestUseCase(repo, &fakeTxManager{}, nil).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
