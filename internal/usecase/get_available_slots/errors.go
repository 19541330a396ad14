package get_available_slots

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда преподаватель не найден
	ErrTeacherNotFound = errors.New("teacher not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
