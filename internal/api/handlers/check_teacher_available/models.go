package check_teacher_available

import (
	"time"

	checkTeacherAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_teacher_available"
)

// AvailabilityCheckResponse HTTP response model
type AvailabilityCheckResponse struct {
	TeacherID            int64  `json:"teacherId"`
	At                   string `json:"at"`
	DurationMinutes      int    `json:"durationMinutes"`
	IsAvailable          bool   `json:"isAvailable"`
	Reason               string `json:"reason,omitempty"`
	ConflictingBookingID *int64 `json:"conflictingBookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkTeacherAvailable.Response) *AvailabilityCheckResponse {
	return &AvailabilityCheckResponse{
		TeacherID:            resp.TeacherID,
		At:                   resp.At.Format(time.RFC3339),
		DurationMinutes:      resp.DurationMinutes,
		IsAvailable:          resp.IsAvailable,
		Reason:               resp.Reason,
		ConflictingBookingID: resp.ConflictingBookingID,
	}
}
