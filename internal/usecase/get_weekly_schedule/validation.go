package get_weekly_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// applyDefaults валидирует запрос и подставляет значения по умолчанию
func applyDefaults(req *Request) (weeks int, duration int, err error) {
	if req.TeacherID <= 0 {
		return 0, 0, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}

	weeks = req.Weeks
	if weeks == 0 {
		weeks = domain.DefaultWeeksCount
	}
	if weeks < 1 || weeks > domain.MaxWeeksCount {
		return 0, 0, fmt.Errorf("%w: weeks must be between 1 and %d", ErrInvalidInput, domain.MaxWeeksCount)
	}

	duration = req.SlotDuration
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}
	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		return 0, 0, fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return weeks, duration, nil
}
