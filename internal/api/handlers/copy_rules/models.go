package copy_rules

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// CopyRulesRequest HTTP request model
type CopyRulesRequest struct {
	SourceDay       *int  `json:"sourceDay" validate:"required,min=0,max=6"`
	TargetDays      []int `json:"targetDays" validate:"required,min=1,dive,min=0,max=6"`
	ReplaceExisting bool  `json:"replaceExisting"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CopyRulesRequest) ToServiceRequest(teacherID int64) *models.CopyRulesRequest {
	return &models.CopyRulesRequest{
		TeacherID:       teacherID,
		SourceDay:       *r.SourceDay,
		TargetDays:      r.TargetDays,
		ReplaceExisting: r.ReplaceExisting,
	}
}
