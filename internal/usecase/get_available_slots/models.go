package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса слотов преподавателя за период
type Request struct {
	TeacherID          int64
	StartDate          time.Time // первая дата, время игнорируется
	EndDate            time.Time // последняя дата включительно
	DurationMinutes    *int      // nil = 60
	BreakMinutes       *int      // nil = 15
	IncludeShortNotice bool      // не помечать слоты внутри минимального срока уведомления
}

// Response модель ответа со слотами
type Response struct {
	TeacherID       int64
	StartDate       time.Time
	EndDate         time.Time
	DurationMinutes int
	BreakMinutes    int
	Slots           []domain.TimeSlot
	AvailableCount  int
}
