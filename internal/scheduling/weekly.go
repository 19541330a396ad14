package scheduling

import (
	"math"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// RoundHours округляет до двух знаков (половина от нуля), а не отбрасывает
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// WeeklyOptions параметры построения недельного расписания
type WeeklyOptions struct {
	Slots        SlotOptions
	IncludeSlots bool // прикладывать ли список слотов к дням
}

// BuildWeeklySchedules строит weeks недель по семь дней начиная с weekStart
func BuildWeeklySchedules(
	weekStart time.Time,
	weeks int,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	now time.Time,
	opts WeeklyOptions,
) ([]domain.WeeklySchedule, error) {
	if err := opts.Slots.validate(); err != nil {
		return nil, err
	}

	first := StartOfDay(weekStart)
	schedules := make([]domain.WeeklySchedule, 0, weeks)

	for w := 0; w < weeks; w++ {
		start := first.AddDate(0, 0, w*domain.DaysPerWeek)
		end := start.AddDate(0, 0, domain.DaysPerWeek-1)

		days, err := CalendarDays(start, end)
		if err != nil {
			return nil, err
		}

		week := domain.WeeklySchedule{
			WeekStart: start,
			WeekEnd:   end,
			Days:      make([]domain.DailySchedule, 0, len(days)),
		}

		for _, day := range days {
			daily, err := buildDailySchedule(day, rules, bookings, now, opts)
			if err != nil {
				return nil, err
			}

			week.TotalAvailableHours += daily.TotalAvailableHours
			week.TotalBookedHours += daily.TotalBookedHours
			week.Days = append(week.Days, daily.DailySchedule)
			week.AvailableSlots += daily.available
			week.BookedSlots += daily.booked
		}

		week.TotalAvailableHours = RoundHours(week.TotalAvailableHours)
		week.TotalBookedHours = RoundHours(week.TotalBookedHours)
		schedules = append(schedules, week)
	}

	return schedules, nil
}

type dailySummary struct {
	domain.DailySchedule
	available int
	booked    int
}

func buildDailySchedule(
	day time.Time,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	now time.Time,
	opts WeeklyOptions,
) (dailySummary, error) {
	weekday := DayOfWeek(day)

	// Доступные часы считаются по окнам правил, независимо от бронирований
	var availableHours float64
	for _, rule := range rulesForDay(rules, weekday, (*domain.AvailabilityRule).GeneratesSlots) {
		availableHours += rule.Hours()
	}

	dayBookings := occupyingBookingsOn(day, bookings)

	var bookedHours float64
	for _, booking := range dayBookings {
		bookedHours += booking.HoursBooked()
	}

	slots, err := GenerateDaySlots(day, rules, bookings, now, opts.Slots)
	if err != nil {
		return dailySummary{}, err
	}

	summary := dailySummary{
		DailySchedule: domain.DailySchedule{
			Date:                day,
			DayOfWeek:           weekday,
			DayName:             DayName(weekday),
			Slots:               []domain.TimeSlot{},
			TotalAvailableHours: RoundHours(availableHours),
			TotalBookedHours:    RoundHours(bookedHours),
			HasAvailability:     availableHours > 0,
		},
	}

	// Занятость считается по бронированиям, а не по причине недоступности:
	// прошедший или близкий слот с бронированием тоже занят
	for _, slot := range slots {
		if slot.IsAvailable {
			summary.available++
		}
		if firstOverlapping(dayBookings, slot.StartsAt, slot.EndsAt()) != nil {
			summary.booked++
		}
	}

	if opts.IncludeSlots {
		summary.Slots = slots
	}

	return summary, nil
}
