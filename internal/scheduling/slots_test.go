package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestGenerateSlots_BookedSlotCarriesBookingID(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "12:00")}
	bookings := []*domain.Booking{
		booking(501, monday.Add(10*time.Hour), 60, domain.StatusConfirmed),
	}

	slots, err := GenerateSlots(monday, monday, rules, bookings, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}, slotTimes(slots))

	assert.True(t, slots[0].IsAvailable)
	assert.Empty(t, slots[0].Reason)

	assert.False(t, slots[1].IsAvailable)
	assert.Equal(t, domain.ReasonAlreadyBooked, slots[1].Reason)
	require.NotNil(t, slots[1].BookingID)
	assert.Equal(t, int64(501), *slots[1].BookingID)

	assert.True(t, slots[2].IsAvailable)
	assert.Nil(t, slots[2].BookingID)

	for _, slot := range slots {
		assert.Equal(t, 1, slot.DayOfWeek)
		assert.Equal(t, "Monday", slot.DayName)
		assert.Equal(t, rules[0].ID.String(), slot.RuleID)
	}
}

func TestGenerateSlots_BreakBetweenSlots(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "12:00")}
	opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), 60, 15, false, false)

	slots, err := GenerateSlots(monday, monday, rules, nil, farNow, opts)
	require.NoError(t, err)

	// 11:30-12:30 выходит за окно и не создаётся
	assert.Equal(t, []string{"09:00-10:00", "10:15-11:15"}, slotTimes(slots))
}

func TestGenerateSlots_NoPartialSlots(t *testing.T) {
	windows := [][2]string{{"09:00", "12:00"}, {"08:10", "09:55"}, {"13:00", "13:45"}, {"00:00", "23:59"}}
	durations := []int{15, 30, 45, 60, 90, 180}
	breaks := []int{0, 5, 15, 60}

	for _, w := range windows {
		r := rule(1, w[0], w[1])
		for _, duration := range durations {
			for _, brk := range breaks {
				opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), duration, brk, true, false)
				slots, err := GenerateSlots(monday, monday, []*domain.AvailabilityRule{r}, nil, farNow, opts)
				require.NoError(t, err)

				for i, slot := range slots {
					assert.GreaterOrEqual(t, slot.StartTime.Minutes(), r.StartTime.Minutes())
					assert.LessOrEqual(t, slot.EndTime.Minutes(), r.EndTime.Minutes())
					assert.Equal(t, duration, slot.EndTime.Minutes()-slot.StartTime.Minutes())
					if i > 0 {
						assert.Equal(t, duration+brk, slot.StartTime.Minutes()-slots[i-1].StartTime.Minutes())
					}
				}

				// следующий слот уже не помещается
				if n := len(slots); n > 0 {
					next := slots[n-1].StartTime.Minutes() + duration + brk
					assert.Greater(t, next+duration, r.EndTime.Minutes())
				}
			}
		}
	}
}

func TestGenerateSlots_ShortNotice(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "12:00")}
	// cutoff = понедельник 10:00
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(monday, monday, rules, nil, now, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.False(t, slots[0].IsAvailable)
	assert.Equal(t, domain.ReasonShortNotice, slots[0].Reason)
	assert.True(t, slots[1].IsAvailable)
	assert.True(t, slots[2].IsAvailable)

	opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), 60, 0, true, false)
	slots, err = GenerateSlots(monday, monday, rules, nil, now, opts)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestGenerateSlots_ShortNoticeTakesPrecedenceOverBooking(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "10:00")}
	bookings := []*domain.Booking{booking(9, monday.Add(9*time.Hour), 60, domain.StatusPending)}
	now := monday.Add(8 * time.Hour)

	slots, err := GenerateSlots(monday, monday, rules, bookings, now, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.ReasonShortNotice, slots[0].Reason)
}

func TestGenerateSlots_IgnoresNonOccupyingBookings(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "11:00")}
	bookings := []*domain.Booking{
		booking(1, monday.Add(9*time.Hour), 60, domain.StatusCancelled),
		booking(2, monday.Add(10*time.Hour), 60, domain.StatusCompleted),
		// другой день
		booking(3, monday.AddDate(0, 0, 7).Add(9*time.Hour), 60, domain.StatusConfirmed),
	}

	slots, err := GenerateSlots(monday, monday, rules, bookings, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestGenerateSlots_PartialBookingOverlap(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "12:00")}
	bookings := []*domain.Booking{booking(77, monday.Add(9*time.Hour+30*time.Minute), 60, domain.StatusConfirmed)}

	slots, err := GenerateSlots(monday, monday, rules, bookings, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, domain.ReasonAlreadyBooked, slots[0].Reason)
	assert.Equal(t, domain.ReasonAlreadyBooked, slots[1].Reason)
	assert.True(t, slots[2].IsAvailable)
}

func TestGenerateSlots_BeyondHorizon(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "07:00", "10:00")}
	// горизонт 720 часов: 2026-11-09 08:00
	horizonDay := monday.AddDate(0, 0, 21)

	slots, err := GenerateSlots(horizonDay, horizonDay, rules, nil, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].IsAvailable)
	assert.True(t, slots[1].IsAvailable)
	assert.False(t, slots[2].IsAvailable)
	assert.Equal(t, domain.ReasonBeyondHorizon, slots[2].Reason)

	policy := domain.DefaultTeacherPolicy(1)
	policy.MaxAdvanceBookingHours = 0
	opts := NewSlotOptions(policy, 60, 0, false, false)
	slots, err = GenerateSlots(horizonDay, horizonDay, rules, nil, farNow, opts)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
	}
}

func TestGenerateSlots_Blackout(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		rule(1, "09:00", "12:00"),
		blackout(1, "10:30", "11:00"),
	}

	slots, err := GenerateSlots(monday, monday, rules, nil, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
	}

	opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), 60, 0, false, true)
	slots, err = GenerateSlots(monday, monday, rules, nil, farNow, opts)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.True(t, slots[0].IsAvailable)
	assert.Equal(t, domain.ReasonBlackout, slots[1].Reason)
	assert.True(t, slots[2].IsAvailable)
}

func TestGenerateSlots_SkipsInactiveAndNonRegularRules(t *testing.T) {
	inactive := rule(1, "13:00", "15:00")
	inactive.IsActive = false
	oneTime := rule(1, "16:00", "17:00")
	oneTime.Kind = domain.KindOneTime

	slots, err := GenerateSlots(monday, monday, []*domain.AvailabilityRule{inactive, oneTime}, nil, farNow, defaultOpts())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_SortedAcrossRulesAndDays(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		rule(2, "08:00", "09:00"),
		rule(1, "14:00", "15:00"),
		rule(1, "09:00", "10:00"),
	}
	tuesday := monday.AddDate(0, 0, 1)

	slots, err := GenerateSlots(monday, tuesday, rules, nil, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 3)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartsAt.Before(slots[i].StartsAt))
	}
	assert.Equal(t, "Tuesday", slots[2].DayName)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "12:00"), rule(3, "10:00", "18:00")}
	bookings := []*domain.Booking{booking(5, monday.Add(11*time.Hour), 60, domain.StatusConfirmed)}
	end := monday.AddDate(0, 0, 13)

	first, err := GenerateSlots(monday, end, rules, bookings, farNow, defaultOpts())
	require.NoError(t, err)
	second, err := GenerateSlots(monday, end, rules, bookings, farNow, defaultOpts())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_NoRules(t *testing.T) {
	slots, err := GenerateSlots(monday, monday.AddDate(0, 0, 6), nil, nil, farNow, defaultOpts())
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidOptions(t *testing.T) {
	_, err := GenerateSlots(monday, monday, nil, nil, farNow, SlotOptions{DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidSlotOptions)

	_, err = GenerateDaySlots(monday, nil, nil, farNow, SlotOptions{DurationMinutes: 30, BreakMinutes: -1})
	assert.ErrorIs(t, err, ErrInvalidSlotOptions)
}

func TestGenerateDaySlots(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "10:30")}

	slots, err := GenerateDaySlots(monday.Add(15*time.Hour), rules, nil, farNow, defaultOpts())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, monday, slots[0].Date)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartsAt)
}
