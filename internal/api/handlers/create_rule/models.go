package create_rule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// CreateRuleRequest HTTP request model
type CreateRuleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" validate:"required,min=0,max=6"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Kind      string `json:"kind,omitempty" validate:"omitempty,oneof=regular one_time blackout"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// Формат и порядок времени проверяет сервис, чтобы ошибка указывала поле.
func (r *CreateRuleRequest) ToServiceRequest(teacherID int64) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		TeacherID: teacherID,
		RuleInput: models.RuleInput{
			DayOfWeek: *r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Kind:      r.Kind,
			IsActive:  r.IsActive,
		},
	}
}
