package preview_service_import

import (
	"math"

	previewServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/preview_service_import"
)

// PreviewResponse HTTP response model
type PreviewResponse struct {
	BatchID         string            `json:"batchId"`
	CompanyID       int64             `json:"companyId"`
	Filename        string            `json:"filename"`
	Headers         []string          `json:"headers"`
	Mapping         map[string]string `json:"mapping"`
	Summary         Summary           `json:"summary"`
	ImportableCount int               `json:"importableCount"`
	Rows            []Row             `json:"rows"`
}

// Summary количество строк по статусам
type Summary struct {
	Total     int `json:"total"`
	Valid     int `json:"valid"`
	Duplicate int `json:"duplicate"`
	Error     int `json:"error"`
}

// Row строка файла после проверки
// duration и price равны null, если значение не удалось разобрать
type Row struct {
	RowNumber   int      `json:"rowNumber"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Duration    *float64 `json:"duration"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	IsValid     bool     `json:"isValid"`
	IsDuplicate bool     `json:"isDuplicate"`
	Errors      []string `json:"errors"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewServiceImport.Response) *PreviewResponse {
	rows := make([]Row, len(resp.Rows))
	for i, r := range resp.Rows {
		rows[i] = Row{
			RowNumber:   r.RowNumber,
			Name:        r.Name,
			Category:    r.Category,
			Duration:    numberOrNil(r.Duration),
			Price:       numberOrNil(r.Price),
			Description: r.Description,
			Status:      r.Status(),
			IsValid:     r.Valid(),
			IsDuplicate: r.IsDuplicate,
			Errors:      r.Errors,
		}
	}

	return &PreviewResponse{
		BatchID:   resp.BatchID,
		CompanyID: resp.CompanyID,
		Filename:  resp.Filename,
		Headers:   resp.Headers,
		Mapping:   resp.Mapping.ToStrings(),
		Summary: Summary{
			Total:     resp.Summary.Total,
			Valid:     resp.Summary.Valid,
			Duplicate: resp.Summary.Duplicate,
			Error:     resp.Summary.Error,
		},
		ImportableCount: resp.ImportableCount,
		Rows:            rows,
	}
}

// numberOrNil JSON не умеет NaN
func numberOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
