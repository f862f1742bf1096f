package preview_service_import

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/csvimport"
)

const metricsStage = "preview"

// UseCase use case предпросмотра импорта услуг из CSV/XLSX
// Ничего не создает: только разбирает файл, сопоставляет колонки и проверяет строки
type UseCase struct {
	serviceRepo ServiceRepository
	aliases     csvimport.Aliases
	maxFileSize int64
	metrics     MetricsRecorder
	newBatchID  func() string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// maxFileSize <= 0 снимает ограничение на размер файла; metrics может быть nil
func NewUseCase(
	serviceRepo ServiceRepository,
	aliases csvimport.Aliases,
	maxFileSize int64,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		aliases:     aliases,
		maxFileSize: maxFileSize,
		metrics:     metrics,
		newBatchID:  uuid.NewString,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	batchID := uc.newBatchID()

	uc.logger.Info("PreviewServiceImport: batch=%s, user=%d, company=%d, file=%s, size=%d",
		batchID, req.UserID, req.CompanyID, req.Filename, len(req.Data))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxFileSize); err != nil {
		uc.logger.Warn("PreviewServiceImport: batch=%s validation failed: %v", batchID, err)
		return nil, err
	}

	// 2. Разбираем файл
	table, err := csvimport.ReadFile(req.Filename, req.Data)
	if err != nil {
		uc.logger.Warn("PreviewServiceImport: batch=%s failed to read file: %v", batchID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	// 3. Сопоставляем заголовки с полями услуги
	mapping, err := csvimport.DetectMapping(table.Headers, uc.aliases)
	if err != nil {
		if errors.Is(err, csvimport.ErrNameColumnNotFound) {
			uc.logger.Warn("PreviewServiceImport: batch=%s: %v", batchID, err)
			return nil, &NameColumnError{Headers: table.Headers}
		}
		return nil, fmt.Errorf("%w: failed to detect mapping: %v", ErrInternal, err)
	}

	// 4. Загружаем названия активных услуг для поиска дублей
	names, err := uc.serviceRepo.ListActiveNames(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("PreviewServiceImport: batch=%s failed to list services of company=%d: %v",
			batchID, req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	// 5. Проверяем строки
	rows := csvimport.MapRows(table.Rows, mapping, csvimport.NewNameSet(names))
	summary := csvimport.Summarize(rows)
	importable := len(csvimport.ImportableRows(rows, req.SkipDuplicates))

	if uc.metrics != nil {
		uc.metrics.RecordImportRows(metricsStage, csvimport.StatusValid, summary.Valid)
		uc.metrics.RecordImportRows(metricsStage, csvimport.StatusDuplicate, summary.Duplicate)
		uc.metrics.RecordImportRows(metricsStage, csvimport.StatusError, summary.Error)
	}

	uc.logger.Info("PreviewServiceImport: batch=%s, company=%d, total=%d, valid=%d, duplicate=%d, error=%d, importable=%d",
		batchID, req.CompanyID, summary.Total, summary.Valid, summary.Duplicate, summary.Error, importable)

	return &Response{
		BatchID:         batchID,
		CompanyID:       req.CompanyID,
		Filename:        req.Filename,
		Headers:         table.Headers,
		Mapping:         mapping,
		Rows:            rows,
		Summary:         summary,
		ImportableCount: importable,
	}, nil
}
