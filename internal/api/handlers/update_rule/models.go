package update_rule

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// UpdateRuleRequest HTTP request model, все поля необязательные
type UpdateRuleRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"` // не изменяется, принимается только для понятной ошибки
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Kind      *string `json:"kind,omitempty" validate:"omitempty,oneof=regular one_time blackout"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// IsEmpty true, если не передано ни одного изменяемого поля
func (r *UpdateRuleRequest) IsEmpty() bool {
	return r.StartTime == nil && r.EndTime == nil && r.Kind == nil && r.IsActive == nil
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRuleRequest) ToServiceRequest(teacherID int64, ruleID uuid.UUID) *models.UpdateRuleRequest {
	return &models.UpdateRuleRequest{
		TeacherID: teacherID,
		RuleID:    ruleID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Kind:      r.Kind,
		IsActive:  r.IsActive,
	}
}
