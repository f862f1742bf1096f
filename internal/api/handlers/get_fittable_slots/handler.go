package get_fittable_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	getFittableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_fittable_slots"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidQuery     = "некорректные параметры запроса"
	msgInvalidDate      = "дата в прошлом"
	msgCompanyNotFound  = "компания не найдена"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetFittableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFittableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/fittable-slots
// Query params: date (required, YYYY-MM-DD), serviceIds (1,2,3), durationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companyId из URL
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("GET /companies/{id}/fittable-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	// Разбираем и проверяем query параметры
	query, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /companies/{id}/fittable-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if err := handlers.Validate(query); err != nil {
		h.logger.Warn("GET /companies/{id}/fittable-slots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(middleware.UserIDFromContext(r.Context()), companyID)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/fittable-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFittableSlots.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/fittable-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getFittableSlots.ErrInvalidDate):
			h.logger.Warn("GET /companies/{id}/fittable-slots - Invalid date: company_id=%d, date=%s", companyID, query.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFittableSlots.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/fittable-slots - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getFittableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /companies/{id}/fittable-slots - Service not found: company_id=%d, service_ids=%v",
				companyID, query.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /companies/{id}/fittable-slots - Failed to get slots: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /companies/{id}/fittable-slots - Slots retrieved successfully: company_id=%d, date=%s, fittable=%d of %d",
		companyID, query.Date, response.FittableSlots, response.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, response)
}
