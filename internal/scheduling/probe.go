package scheduling

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Availability результат проверки занятости преподавателя в конкретный момент
type Availability struct {
	IsAvailable bool
	Reason      string
	BookingID   *int64
}

// CheckAvailableAt проверяет, может ли занятие [at, at+duration) состояться.
// Проверки идут по порядку, возвращается первая причина отказа.
func CheckAvailableAt(
	at time.Time,
	durationMinutes int,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	excludeBookingID *int64,
	now time.Time,
	opts SlotOptions,
) Availability {
	weekday := DayOfWeek(at)
	startMin := types.NewTimeString(at).Minutes()
	endMin := startMin + durationMinutes
	end := at.Add(time.Duration(durationMinutes) * time.Minute)

	// 1. Интервал целиком внутри одного активного регулярного правила
	covered := false
	if endMin < types.MinutesPerDay {
		for _, rule := range rulesForDay(rules, weekday, (*domain.AvailabilityRule).GeneratesSlots) {
			if rule.StartTime.Minutes() <= startMin && endMin <= rule.EndTime.Minutes() {
				covered = true
				break
			}
		}
	}
	if !covered {
		return Availability{Reason: domain.ReasonOutsideHours}
	}

	// 2. Blackout, если включён
	if opts.BlackoutSuppresses && blockedBy(rulesForDay(rules, weekday, (*domain.AvailabilityRule).Blocks), startMin, endMin) {
		return Availability{Reason: domain.ReasonBlackout}
	}

	// 3. Пересечение с занимающими время бронированиями
	for _, booking := range bookings {
		if !booking.IsOccupying() {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if booking.Overlaps(at, end) {
			id := booking.ID
			return Availability{Reason: domain.ReasonBookingConflict, BookingID: &id}
		}
	}

	// 4. Минимальный срок уведомления
	if at.Before(now.Add(opts.AdvanceNotice)) {
		return Availability{Reason: domain.ReasonShortNotice}
	}

	// 5. Горизонт бронирования
	if opts.Horizon > 0 && at.After(now.Add(opts.Horizon)) {
		return Availability{Reason: domain.ReasonBeyondHorizon}
	}

	return Availability{IsAvailable: true}
}
