package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, teacherID int64, id uuid.UUID) (*domain.AvailabilityRule, error)
	List(ctx context.Context, filter domain.RuleFilter) ([]*domain.AvailabilityRule, error)
	ListByTeacherDay(ctx context.Context, teacherID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, teacherID int64, id uuid.UUID) error
	DeleteByTeacherDay(ctx context.Context, teacherID int64, dayOfWeek int) (int64, error)
}

// TeacherRepository интерфейс чтения профилей преподавателей
type TeacherRepository interface {
	Exists(ctx context.Context, teacherID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики конфликтов и неуспешных элементов пакетов
type Metrics interface {
	ObserveConflict(operation string)
	ObserveBatchFailures(operation string, failed int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
