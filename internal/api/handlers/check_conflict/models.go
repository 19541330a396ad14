package check_conflict

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	DayOfWeek     *int    `json:"dayOfWeek" validate:"required"`
	StartTime     string  `json:"startTime" validate:"required"`
	EndTime       string  `json:"endTime" validate:"required"`
	Kind          string  `json:"kind,omitempty" validate:"omitempty,oneof=regular one_time blackout"`
	ExcludeRuleID *string `json:"excludeRuleId,omitempty" validate:"omitempty,uuid"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// ExcludeRuleID уже проверен тегом uuid.
func (r *CheckConflictRequest) ToServiceRequest(teacherID int64) *models.CheckConflictRequest {
	req := &models.CheckConflictRequest{
		TeacherID: teacherID,
		DayOfWeek: *r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Kind:      r.Kind,
	}
	if r.ExcludeRuleID != nil {
		id := uuid.MustParse(*r.ExcludeRuleID)
		req.ExcludeRuleID = &id
	}
	return req
}
