package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ErrInvalidSlotOptions некорректные параметры генерации слотов
var ErrInvalidSlotOptions = errors.New("scheduling: invalid slot options")

// SlotOptions параметры генерации слотов
type SlotOptions struct {
	DurationMinutes    int
	BreakMinutes       int
	IncludeShortNotice bool          // не применять минимальный срок уведомления
	AdvanceNotice      time.Duration // минимальный срок между now и началом слота
	Horizon            time.Duration // максимальный горизонт бронирования, 0 = без ограничения
	BlackoutSuppresses bool          // активные blackout-правила закрывают слоты
}

// NewSlotOptions строит опции из политики преподавателя
func NewSlotOptions(policy *domain.TeacherPolicy, duration, breakTime int, includeShortNotice, blackoutSuppresses bool) SlotOptions {
	opts := SlotOptions{
		DurationMinutes:    duration,
		BreakMinutes:       breakTime,
		IncludeShortNotice: includeShortNotice,
		BlackoutSuppresses: blackoutSuppresses,
	}
	if policy != nil {
		opts.AdvanceNotice = time.Duration(policy.AdvanceNoticeHours) * time.Hour
		if policy.HasBookingHorizon() {
			opts.Horizon = time.Duration(policy.MaxAdvanceBookingHours) * time.Hour
		}
	}
	return opts
}

func (o SlotOptions) validate() error {
	if o.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidSlotOptions)
	}
	if o.BreakMinutes < 0 {
		return fmt.Errorf("%w: break must not be negative", ErrInvalidSlotOptions)
	}
	return nil
}

// GenerateSlots разворачивает правила в слоты для каждой даты [startDate, endDate].
// Результат отсортирован по времени начала и детерминирован при одинаковом now.
func GenerateSlots(
	startDate, endDate time.Time,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	now time.Time,
	opts SlotOptions,
) ([]domain.TimeSlot, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	days, err := CalendarDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0)
	for _, day := range days {
		slots = append(slots, generateDaySlots(day, rules, bookings, now, opts)...)
	}

	sortSlots(slots)
	return slots, nil
}

// GenerateDaySlots генерирует слоты одной календарной даты
func GenerateDaySlots(
	date time.Time,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	now time.Time,
	opts SlotOptions,
) ([]domain.TimeSlot, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	slots := generateDaySlots(StartOfDay(date), rules, bookings, now, opts)
	sortSlots(slots)
	return slots, nil
}

func generateDaySlots(
	day time.Time,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	now time.Time,
	opts SlotOptions,
) []domain.TimeSlot {
	weekday := DayOfWeek(day)

	// Шаг 1: активные регулярные правила этого дня недели
	windows := rulesForDay(rules, weekday, (*domain.AvailabilityRule).GeneratesSlots)
	if len(windows) == 0 {
		return []domain.TimeSlot{}
	}

	var blackouts []*domain.AvailabilityRule
	if opts.BlackoutSuppresses {
		blackouts = rulesForDay(rules, weekday, (*domain.AvailabilityRule).Blocks)
	}

	// Шаг 2: занимающие время бронирования, начинающиеся в эту дату
	dayBookings := occupyingBookingsOn(day, bookings)

	// Шаг 3: граница минимального срока уведомления
	var cutoff time.Time
	hasCutoff := !opts.IncludeShortNotice
	if hasCutoff {
		cutoff = now.Add(opts.AdvanceNotice)
	}

	var horizon time.Time
	hasHorizon := opts.Horizon > 0
	if hasHorizon {
		horizon = now.Add(opts.Horizon)
	}

	step := opts.DurationMinutes + opts.BreakMinutes
	dayName := DayName(weekday)
	slots := make([]domain.TimeSlot, 0)

	// Шаг 4: проход по окну каждого правила с шагом duration+break.
	// Шаг 5: слот, выходящий за конец окна, не создаётся.
	for _, rule := range windows {
		windowEnd := rule.EndTime.Minutes()

		for startMin := rule.StartTime.Minutes(); startMin+opts.DurationMinutes <= windowEnd; startMin += step {
			start, err := types.NewTimeStringFromMinutes(startMin)
			if err != nil {
				break
			}
			end, err := start.AddMinutes(opts.DurationMinutes)
			if err != nil {
				break
			}
			startsAt := start.On(day)
			endsAt := end.On(day)
			booking := firstOverlapping(dayBookings, startsAt, endsAt)

			slot := domain.TimeSlot{
				Date:        day,
				DayOfWeek:   weekday,
				DayName:     dayName,
				StartTime:   start,
				EndTime:     end,
				StartsAt:    startsAt,
				IsAvailable: true,
				RuleID:      rule.ID.String(),
			}

			switch {
			case hasCutoff && startsAt.Before(cutoff):
				slot.IsAvailable = false
				slot.Reason = domain.ReasonShortNotice

			case booking != nil:
				id := booking.ID
				slot.IsAvailable = false
				slot.Reason = domain.ReasonAlreadyBooked
				slot.BookingID = &id

			case hasHorizon && startsAt.After(horizon):
				slot.IsAvailable = false
				slot.Reason = domain.ReasonBeyondHorizon

			case blockedBy(blackouts, startMin, end.Minutes()):
				slot.IsAvailable = false
				slot.Reason = domain.ReasonBlackout
			}

			slots = append(slots, slot)
		}
	}

	return slots
}

// rulesForDay отбирает правила дня недели по предикату, упорядочивая по началу
func rulesForDay(rules []*domain.AvailabilityRule, weekday int, keep func(*domain.AvailabilityRule) bool) []*domain.AvailabilityRule {
	selected := make([]*domain.AvailabilityRule, 0)
	for _, rule := range rules {
		if rule.DayOfWeek == weekday && keep(rule) {
			selected = append(selected, rule)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime.IsBefore(selected[j].StartTime)
	})
	return selected
}

// occupyingBookingsOn возвращает pending/confirmed бронирования, начинающиеся в дату day
func occupyingBookingsOn(day time.Time, bookings []*domain.Booking) []*domain.Booking {
	selected := make([]*domain.Booking, 0)
	for _, booking := range bookings {
		if booking.IsOccupying() && SameDay(booking.ScheduledAt.In(day.Location()), day) {
			selected = append(selected, booking)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].ScheduledAt.Before(selected[j].ScheduledAt)
	})
	return selected
}

// firstOverlapping возвращает первое бронирование, пересекающее [start, end)
func firstOverlapping(bookings []*domain.Booking, start, end time.Time) *domain.Booking {
	for _, booking := range bookings {
		if booking.Overlaps(start, end) {
			return booking
		}
	}
	return nil
}

// blockedBy проверяет пересечение [startMin, endMin) с окнами blackout
func blockedBy(blackouts []*domain.AvailabilityRule, startMin, endMin int) bool {
	for _, rule := range blackouts {
		if rule.StartTime.Minutes() < endMin && rule.EndTime.Minutes() > startMin {
			return true
		}
	}
	return false
}

func sortSlots(slots []domain.TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].StartsAt.Equal(slots[j].StartsAt) {
			return slots[i].StartsAt.Before(slots[j].StartsAt)
		}
		return slots[i].EndsAt().Before(slots[j].EndsAt())
	})
}

