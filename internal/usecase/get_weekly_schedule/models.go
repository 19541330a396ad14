package get_weekly_schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса недельного расписания
type Request struct {
	TeacherID       int64
	WeekStart       *time.Time // nil = воскресенье текущей недели
	Weeks           int        // 0 = 1
	SlotDuration    int        // 0 = 60
	IncludeBookings bool       // прикладывать слоты к дням
}

// Response модель ответа
type Response struct {
	TeacherID    int64
	SlotDuration int
	Weeks        []domain.WeeklySchedule
}
