package scheduling

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// dayNames индексируется значением DayOfWeek (0 = воскресенье)
var dayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// DayName возвращает название дня недели, пустую строку для значения вне 0-6
func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return ""
	}
	return dayNames[day]
}

// DayOfWeek возвращает день недели даты в её локации (0 = воскресенье)
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// StartOfDay обнуляет время, сохраняя локацию
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart возвращает начало недели (день 0), которой принадлежит t
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -DayOfWeek(day))
}

// SameDay проверяет, что два момента относятся к одной календарной дате
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CalendarDays перечисляет календарные даты [start, end] включительно
func CalendarDays(start, end time.Time) ([]time.Time, error) {
	from := StartOfDay(start)
	to := StartOfDay(end)
	if to.Before(from) {
		return []time.Time{}, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from,
	})
	if err != nil {
		return nil, fmt.Errorf("build daily recurrence: %w", err)
	}

	return rule.Between(from, to, true), nil
}
