package bulk_create_rules

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// BulkCreateRequest HTTP request model.
// Элементы проверяются сервисом по одному и попадают в failures.
type BulkCreateRequest struct {
	Rules []models.RuleInput `json:"rules" validate:"required,min=1,max=100"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *BulkCreateRequest) ToServiceRequest(teacherID int64) *models.BulkCreateRequest {
	return &models.BulkCreateRequest{
		TeacherID: teacherID,
		Rules:     r.Rules,
	}
}
