package check_teacher_available

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	ListActiveByTeacher(ctx context.Context, teacherID int64) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс чтения бронирований
type BookingRepository interface {
	ListOccupying(ctx context.Context, teacherID int64, from, to time.Time) ([]*domain.Booking, error)
}

// TeacherRepository интерфейс чтения политики преподавателя
type TeacherRepository interface {
	GetPolicy(ctx context.Context, teacherID int64) (*domain.TeacherPolicy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
