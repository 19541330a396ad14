package teacher

import "errors"

var (
	// ErrTeacherNotFound возвращается, когда профиль преподавателя не найден
	ErrTeacherNotFound = errors.New("teacher.repository: teacher not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("teacher.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("teacher.repository: failed to scan row")
)
