package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// validateRequest валидирует запрос и возвращает длительность и перерыв с учётом значений по умолчанию
func validateRequest(req *Request) (duration int, breakTime int, err error) {
	if req.TeacherID <= 0 {
		return 0, 0, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return 0, 0, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := scheduling.StartOfDay(req.StartDate)
	end := scheduling.StartOfDay(req.EndDate)
	if end.Before(start) {
		return 0, 0, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if start.AddDate(0, 0, domain.MaxSlotRangeDays).Before(end.AddDate(0, 0, 1)) {
		return 0, 0, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, domain.MaxSlotRangeDays)
	}

	duration = ptr.Value(req.DurationMinutes, domain.DefaultSlotDurationMinutes)
	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		return 0, 0, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	breakTime = ptr.Value(req.BreakMinutes, domain.DefaultBreakMinutes)
	if breakTime < domain.MinBreakMinutes || breakTime > domain.MaxBreakMinutes {
		return 0, 0, fmt.Errorf("%w: breakTime must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBreakMinutes, domain.MaxBreakMinutes)
	}

	return duration, breakTime, nil
}
