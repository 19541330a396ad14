package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// понедельник
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	// заранее, чтобы не срабатывал минимальный срок уведомления
	farNow = time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC)
)

func rule(day int, start, end string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        uuid.New(),
		TeacherID: 1,
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Kind:      domain.KindRegular,
		IsActive:  true,
	}
}

func blackout(day int, start, end string) *domain.AvailabilityRule {
	r := rule(day, start, end)
	r.Kind = domain.KindBlackout
	return r
}

func booking(id int64, at time.Time, minutes int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		TeacherID:       1,
		ScheduledAt:     at,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func defaultOpts() SlotOptions {
	return NewSlotOptions(domain.DefaultTeacherPolicy(1), 60, 0, false, false)
}

func slotTimes(slots []domain.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String() + "-" + s.EndTime.String()
	}
	return out
}
