package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrRuleNotFound возвращается, когда правило не найдено у преподавателя
	ErrRuleNotFound = errors.New("availability rule not found")

	// ErrConflict возвращается, когда интервал пересекается с активными правилами
	ErrConflict = errors.New("availability rule conflicts with existing rules")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ConflictError содержит все пересекающиеся правила. Сравнивается с ErrConflict через errors.Is.
type ConflictError struct {
	Rules []*domain.AvailabilityRule
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicting rule(s)", ErrConflict, len(e.Rules))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
