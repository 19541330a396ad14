package bulk_create_rules

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	BulkCreate(ctx context.Context, req *models.BulkCreateRequest) (*models.BatchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
