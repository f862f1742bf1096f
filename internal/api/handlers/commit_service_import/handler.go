package commit_service_import

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	commitServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/commit_service_import"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidInput     = "некорректные данные импорта"
)

type Handler struct {
	useCase CommitServiceImportUseCase
	logger  Logger
}

func NewHandler(useCase CommitServiceImportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/services/import
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("POST /companies/{id}/services/import - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req CommitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/services/import - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /companies/{id}/services/import - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.UserIDFromContext(r.Context()), companyID))
	if err != nil {
		switch {
		case errors.Is(err, commitServiceImport.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/services/import - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /companies/{id}/services/import - Failed to import: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/services/import - Imported: company_id=%d, batch=%s, created=%d, skipped=%d, failed=%d",
		companyID, result.BatchID, result.Created, result.Skipped, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
