package get_fittable_slots

import (
	"context"

	getFittableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_fittable_slots"
)

type GetFittableSlotsUseCase interface {
	Execute(ctx context.Context, req *getFittableSlots.Request) (*getFittableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
