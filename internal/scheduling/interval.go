package scheduling

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidFormat время не соответствует строгому формату HH:MM
	ErrInvalidFormat = errors.New("scheduling: invalid time format, expected HH:MM")

	// ErrInvalidRange начало интервала не раньше конца
	ErrInvalidRange = errors.New("scheduling: start time must be before end time")

	// ErrInvalidDay день недели вне диапазона 0-6
	ErrInvalidDay = errors.New("scheduling: day of week must be between 0 and 6")
)

// IntervalError ошибка валидации с указанием поля
type IntervalError struct {
	Field string
	Value string
	Err   error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, e.Value)
}

func (e *IntervalError) Unwrap() error {
	return e.Err
}

// Interval проверенный интервал [Start, End) в пределах дня недели
type Interval struct {
	DayOfWeek int
	Start     types.TimeString
	End       types.TimeString
}

// ValidateInterval проверяет день недели, формат времени и порядок границ
func ValidateInterval(dayOfWeek int, start, end string) (Interval, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return Interval{}, &IntervalError{Field: "dayOfWeek", Value: fmt.Sprint(dayOfWeek), Err: ErrInvalidDay}
	}

	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return Interval{}, &IntervalError{Field: "startTime", Value: start, Err: ErrInvalidFormat}
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return Interval{}, &IntervalError{Field: "endTime", Value: end, Err: ErrInvalidFormat}
	}

	if !startTime.IsBefore(endTime) {
		return Interval{}, &IntervalError{Field: "endTime", Value: end, Err: ErrInvalidRange}
	}

	return Interval{DayOfWeek: dayOfWeek, Start: startTime, End: endTime}, nil
}

