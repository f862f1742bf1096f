package get_fittable_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/schedulingservice"
	"github.com/m04kA/SMC-SchedulingService/internal/slotfit"
)

// UseCase use case для получения слотов, с которых можно начать запись на набор услуг
type UseCase struct {
	serviceRepo      ServiceRepository
	schedulingClient SchedulingClient
	metrics          MetricsRecorder
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	serviceRepo ServiceRepository,
	schedulingClient SchedulingClient,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		schedulingClient: schedulingClient,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFittableSlots: user=%d, company=%d, date=%s, services=%v, duration=%d",
		req.UserID, req.CompanyID, req.Date.Format(domain.DateFormat), req.ServiceIDs, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFittableSlots: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetFittableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем суммарную длительность записи
	total, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем свободные слоты дня
	date := req.Date.Format(domain.DateFormat)
	open, err := uc.schedulingClient.GetOpenSlots(ctx, req.CompanyID, date)
	if err != nil {
		if errors.Is(err, schedulingservice.ErrCompanyNotFound) {
			uc.logger.Warn("GetFittableSlots: company id=%d not found in scheduling service", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetFittableSlots: failed to get open slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get open slots: %v", ErrInternal, err)
	}
	slots := open.ToDomain()

	// 4. Подбираем слоты и группируем по времени суток
	slotDuration, _ := slotfit.ComputeSlotDuration(slots)
	needed := slotfit.SlotsNeeded(slots, total)
	fittable := slotfit.FilterFittableSlots(slots, total)
	groups := slotfit.GroupByPeriod(fittable)

	if uc.metrics != nil {
		uc.metrics.RecordFittableSlots(len(slots), len(fittable))
	}

	uc.logger.Info("GetFittableSlots: company=%d, date=%s, total=%dmin, slot=%dmin, needed=%d, offered=%d, fittable=%d",
		req.CompanyID, date, total, slotDuration, needed, len(slots), len(fittable))

	return &Response{
		Date:                 req.Date,
		CompanyID:            req.CompanyID,
		TotalDurationMinutes: total,
		SlotDurationMinutes:  slotDuration,
		SlotsNeeded:          needed,
		TotalSlots:           len(slots),
		Morning:              toSlots(groups.Morning, total),
		Afternoon:            toSlots(groups.Afternoon, total),
		Evening:              toSlots(groups.Evening, total),
	}, nil
}

// resolveDuration возвращает явную длительность или сумму длительностей выбранных услуг
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.DurationMinutes > 0 {
		return req.DurationMinutes, nil
	}
	if len(req.ServiceIDs) == 0 {
		return 0, nil
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, req.CompanyID, uniqueIDs(req.ServiceIDs))
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetFittableSlots: %v", err)
			return 0, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		uc.logger.Error("GetFittableSlots: failed to get services: %v", err)
		return 0, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	return domain.TotalDurationMinutes(services), nil
}

// toSlots конвертирует слоты; время окончания записи = начало + длительность
func toSlots(slots []domain.TimeSlot, total int) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		bookingEnd := s.EndTime
		if total > 0 {
			if end, err := s.StartTime.AddMinutes(total); err == nil {
				bookingEnd = end
			}
		}

		result = append(result, Slot{
			ID:             s.ID,
			StartTime:      s.StartTime,
			EndTime:        s.EndTime,
			BookingEndTime: bookingEnd,
		})
	}
	return result
}

// uniqueIDs убирает повторы, сохраняя порядок
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
