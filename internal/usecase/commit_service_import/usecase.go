package commit_service_import

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/csvimport"
	serviceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/service"
)

const (
	metricsStage = "commit"

	msgAlreadyExists = "Service with this name already exists"
)

// UseCase use case создания услуг из проверенных строк импорта
// Строки проверяются заново: клиенту не доверяем, дубли ищем по текущему каталогу
type UseCase struct {
	serviceRepo ServiceRepository
	txManager   TxManager
	metrics     MetricsRecorder
	newBatchID  func() string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	serviceRepo ServiceRepository,
	txManager TxManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		metrics:     metrics,
		newBatchID:  uuid.NewString,
		logger:      logger,
	}
}

// Execute выполняет use case
// Все создания идут в одной транзакции: ошибка БД откатывает весь импорт,
// а дубли и невалидные строки попадают в результат построчно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	batchID := req.BatchID
	if batchID == "" {
		batchID = uc.newBatchID()
	}

	uc.logger.Info("CommitServiceImport: batch=%s, user=%d, company=%d, rows=%d, skipDuplicates=%t",
		batchID, req.UserID, req.CompanyID, len(req.Rows), req.SkipDuplicates)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitServiceImport: batch=%s validation failed: %v", batchID, err)
		return nil, err
	}

	var results []RowResult

	// 2. Проверяем строки и создаем услуги в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		names, err := uc.serviceRepo.ListActiveNames(txCtx, req.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}

		rows := mapInputRows(req.Rows, csvimport.NewNameSet(names))

		results = make([]RowResult, 0, len(rows))
		for _, row := range rows {
			result, err := uc.importRow(txCtx, req, row)
			if err != nil {
				return err
			}
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CommitServiceImport: batch=%s failed, nothing was created: %v", batchID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		BatchID:   batchID,
		CompanyID: req.CompanyID,
		Results:   results,
	}
	for _, r := range results {
		switch r.Status {
		case StatusCreated:
			resp.Created++
		case StatusSkipped:
			resp.Skipped++
		default:
			resp.Failed++
		}
	}

	if uc.metrics != nil {
		uc.metrics.RecordImportRows(metricsStage, StatusCreated, resp.Created)
		uc.metrics.RecordImportRows(metricsStage, StatusSkipped, resp.Skipped)
		uc.metrics.RecordImportRows(metricsStage, StatusError, resp.Failed)
	}

	uc.logger.Info("CommitServiceImport: batch=%s, company=%d, created=%d, skipped=%d, failed=%d",
		batchID, req.CompanyID, resp.Created, resp.Skipped, resp.Failed)

	return resp, nil
}

// importRow создает услугу из строки или объясняет, почему строка не создана
// Возвращает ошибку только при сбое БД
func (uc *UseCase) importRow(ctx context.Context, req *Request, row csvimport.MappedServiceRow) (RowResult, error) {
	result := RowResult{
		RowNumber: row.RowNumber,
		Name:      row.Name,
		Errors:    make([]string, 0),
	}

	if !row.Valid() {
		result.Status = StatusError
		result.Errors = row.Errors
		return result, nil
	}

	if !csvimport.IsImportable(row, req.SkipDuplicates) {
		result.Status = StatusSkipped
		result.Errors = append(result.Errors, msgAlreadyExists)
		return result, nil
	}

	created, err := uc.serviceRepo.Create(ctx, csvimport.ToPayload(row).ToService(req.CompanyID))
	if err != nil {
		// Дубль внутри файла или услуга, созданная параллельно
		if errors.Is(err, serviceRepo.ErrDuplicateService) {
			result.Status = StatusError
			if req.SkipDuplicates {
				result.Status = StatusSkipped
			}
			result.Errors = append(result.Errors, msgAlreadyExists)
			return result, nil
		}
		return result, fmt.Errorf("row %d: %w", row.RowNumber, err)
	}

	result.Status = StatusCreated
	result.ServiceID = &created.ID
	return result, nil
}

// mapInputRows прогоняет строки запроса через те же правила, что и предпросмотр
func mapInputRows(inputs []RowInput, existing csvimport.NameSet) []csvimport.MappedServiceRow {
	mapping := csvimport.CanonicalMapping()

	rows := make([]csvimport.MappedServiceRow, len(inputs))
	for i, in := range inputs {
		raw := map[string]string{
			string(csvimport.FieldName):        in.Name,
			string(csvimport.FieldCategory):    in.Category,
			string(csvimport.FieldDuration):    formatNumber(in.Duration),
			string(csvimport.FieldPrice):       formatNumber(in.Price),
			string(csvimport.FieldDescription): in.Description,
		}

		row := csvimport.MapRow(raw, mapping, i, existing)
		if in.RowNumber > 0 {
			row.RowNumber = in.RowNumber
		}
		rows[i] = row
	}
	return rows
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
