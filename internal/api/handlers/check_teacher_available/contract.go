package check_teacher_available

import (
	"context"

	checkTeacherAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_teacher_available"
)

type CheckTeacherAvailableUseCase interface {
	Execute(ctx context.Context, req *checkTeacherAvailable.Request) (*checkTeacherAvailable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
