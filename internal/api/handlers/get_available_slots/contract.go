package get_available_slots

import (
	"context"

	slotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotsUseCase расчёт слотов преподавателя за диапазон дат
type SlotsUseCase interface {
	Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
