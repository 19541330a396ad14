package check_teacher_available

import "time"

// DefaultDurationMinutes длительность занятия, если не указана
const DefaultDurationMinutes = 60

// Request проверка возможности провести занятие [At, At+Duration)
type Request struct {
	TeacherID        int64
	At               time.Time
	DurationMinutes  int    // 0 = 60
	ExcludeBookingID *int64 // бронирование, которое переносится
}

// Response результат проверки
type Response struct {
	TeacherID            int64
	At                   time.Time
	DurationMinutes      int
	IsAvailable          bool
	Reason               string
	ConflictingBookingID *int64
}
