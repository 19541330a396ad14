package delete_rule

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	Delete(ctx context.Context, teacherID int64, ruleID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
