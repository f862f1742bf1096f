package preview_service_import

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	previewServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/preview_service_import"
)

const (
	formFileField       = "file"
	formSkipDuplicates  = "skipDuplicates"
	multipartMemory     = 1 << 20
	multipartOverhead   = 64 << 10
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingFile      = "файл обязателен (поле file)"
	msgInvalidForm      = "некорректная multipart форма"
	msgInvalidSkipFlag  = "некорректное значение skipDuplicates"
	msgFileTooLarge     = "файл слишком большой"
	msgUnreadableFile   = "не удалось прочитать файл: поддерживаются CSV и XLSX"
	msgNoNameColumn     = "не найдена колонка с названием услуги, найденные колонки: [%s]"
	msgInvalidInput     = "некорректные параметры импорта"
)

type Handler struct {
	useCase     PreviewServiceImportUseCase
	maxFileSize int64
	logger      Logger
}

func NewHandler(useCase PreviewServiceImportUseCase, maxFileSize int64, logger Logger) *Handler {
	return &Handler{
		useCase:     useCase,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/services/import/preview
// multipart/form-data: file (CSV или XLSX), skipDuplicates (по умолчанию true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("POST /companies/{id}/services/import/preview - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.logger.Warn("POST /companies/{id}/services/import/preview - Body too large: company_id=%d", companyID)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /companies/{id}/services/import/preview - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	skipDuplicates := true
	if raw := r.FormValue(formSkipDuplicates); raw != "" {
		skipDuplicates, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("POST /companies/{id}/services/import/preview - Invalid skipDuplicates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSkipFlag)
			return
		}
	}

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/services/import/preview - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/services/import/preview - Failed to read file: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableFile)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &previewServiceImport.Request{
		UserID:         middleware.UserIDFromContext(r.Context()),
		CompanyID:      companyID,
		Filename:       header.Filename,
		Data:           data,
		SkipDuplicates: skipDuplicates,
	})
	if err != nil {
		switch {
		case errors.Is(err, previewServiceImport.ErrFileTooLarge):
			h.logger.Warn("POST /companies/{id}/services/import/preview - File too large: company_id=%d, size=%d", companyID, len(data))
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)

		case errors.Is(err, previewServiceImport.ErrUnreadableFile):
			h.logger.Warn("POST /companies/{id}/services/import/preview - Unreadable file: company_id=%d, error=%v", companyID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnreadableFile)

		case errors.Is(err, previewServiceImport.ErrNameColumnNotFound):
			h.logger.Warn("POST /companies/{id}/services/import/preview - No name column: company_id=%d, error=%v", companyID, err)
			var headers []string
			var columnErr *previewServiceImport.NameColumnError
			if errors.As(err, &columnErr) {
				headers = columnErr.Headers
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, fmt.Sprintf(msgNoNameColumn, strings.Join(headers, ", ")))

		case errors.Is(err, previewServiceImport.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/services/import/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /companies/{id}/services/import/preview - Failed to preview: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/services/import/preview - Preview ready: company_id=%d, batch=%s, rows=%d",
		companyID, result.BatchID, result.Summary.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
