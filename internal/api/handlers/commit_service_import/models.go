package commit_service_import

import (
	commitServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/commit_service_import"
)

// CommitRequest HTTP request model
// Строки приходят из предпросмотра, но значения все равно проверяются use case
type CommitRequest struct {
	BatchID        string     `json:"batchId" validate:"omitempty,max=64"`
	SkipDuplicates *bool      `json:"skipDuplicates"`
	Rows           []RowInput `json:"rows" validate:"required,min=1,max=1000,dive"`
}

type RowInput struct {
	RowNumber   int      `json:"rowNumber" validate:"gte=0"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Duration    *float64 `json:"duration"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
}

// ToUseCaseRequest конвертирует HTTP request в use case request
// skipDuplicates по умолчанию true
func (r *CommitRequest) ToUseCaseRequest(userID, companyID int64) *commitServiceImport.Request {
	skip := true
	if r.SkipDuplicates != nil {
		skip = *r.SkipDuplicates
	}

	rows := make([]commitServiceImport.RowInput, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = commitServiceImport.RowInput{
			RowNumber:   row.RowNumber,
			Name:        row.Name,
			Category:    row.Category,
			Duration:    row.Duration,
			Price:       row.Price,
			Description: row.Description,
		}
	}

	return &commitServiceImport.Request{
		UserID:         userID,
		CompanyID:      companyID,
		BatchID:        r.BatchID,
		SkipDuplicates: skip,
		Rows:           rows,
	}
}

// CommitResponse HTTP response model
type CommitResponse struct {
	BatchID   string      `json:"batchId"`
	CompanyID int64       `json:"companyId"`
	Created   int         `json:"created"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	Results   []RowResult `json:"results"`
}

type RowResult struct {
	RowNumber int      `json:"rowNumber"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	ServiceID *int64   `json:"serviceId,omitempty"`
	Errors    []string `json:"errors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitServiceImport.Response) *CommitResponse {
	results := make([]RowResult, len(resp.Results))
	for i, r := range resp.Results {
		errs := r.Errors
		if errs == nil {
			errs = []string{}
		}
		results[i] = RowResult{
			RowNumber: r.RowNumber,
			Name:      r.Name,
			Status:    r.Status,
			ServiceID: r.ServiceID,
			Errors:    errs,
		}
	}

	return &CommitResponse{
		BatchID:   resp.BatchID,
		CompanyID: resp.CompanyID,
		Created:   resp.Created,
		Skipped:   resp.Skipped,
		Failed:    resp.Failed,
		Results:   results,
	}
}
