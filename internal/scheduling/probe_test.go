package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestCheckAvailableAt(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		rule(1, "09:00", "12:00"),
		blackout(1, "11:00", "11:30"),
		rule(0, "22:00", "23:59"),
	}
	bookings := []*domain.Booking{booking(7, monday.Add(10*time.Hour), 60, domain.StatusConfirmed)}
	at := func(h, m int) time.Time { return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	cases := []struct {
		name      string
		at        time.Time
		duration  int
		exclude   *int64
		now       time.Time
		blackout  bool
		available bool
		reason    string
		bookingID *int64
	}{
		{name: "before window", at: at(8, 30), duration: 60, now: farNow, reason: domain.ReasonOutsideHours},
		{name: "runs past window", at: at(11, 30), duration: 60, now: farNow, reason: domain.ReasonOutsideHours},
		{name: "day without rules", at: at(33, 0), duration: 60, now: farNow, reason: domain.ReasonOutsideHours},
		{name: "crosses midnight", at: monday.Add(-30 * time.Minute), duration: 60, now: farNow, reason: domain.ReasonOutsideHours},
		{name: "touches booking", at: at(9, 0), duration: 60, now: farNow, available: true},
		{name: "overlaps booking", at: at(10, 30), duration: 30, now: farNow, reason: domain.ReasonBookingConflict, bookingID: ptr.Ptr(int64(7))},
		{name: "excluded booking", at: at(10, 30), duration: 30, exclude: ptr.Ptr(int64(7)), now: farNow, available: true},
		{name: "short notice", at: at(9, 0), duration: 60, now: monday.Add(8 * time.Hour), reason: domain.ReasonShortNotice},
		{name: "blackout ignored by default", at: at(11, 0), duration: 60, now: farNow, available: true},
		{name: "blackout enabled", at: at(11, 0), duration: 60, now: farNow, blackout: true, reason: domain.ReasonBlackout},
		{name: "beyond horizon", at: at(9+21*24, 0), duration: 60, now: farNow, reason: domain.ReasonBeyondHorizon},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), tc.duration, 0, false, tc.blackout)

			got := CheckAvailableAt(tc.at, tc.duration, rules, bookings, tc.exclude, tc.now, opts)

			assert.Equal(t, tc.available, got.IsAvailable)
			assert.Equal(t, tc.reason, got.Reason)
			if tc.bookingID == nil {
				assert.Nil(t, got.BookingID)
			} else {
				require.NotNil(t, got.BookingID)
				assert.Equal(t, *tc.bookingID, *got.BookingID)
			}
		})
	}
}

func TestCheckAvailableAt_OutsideHoursBeforeBookingConflict(t *testing.T) {
	rules := []*domain.AvailabilityRule{rule(1, "09:00", "10:00")}
	bookings := []*domain.Booking{booking(3, monday.Add(9*time.Hour+30*time.Minute), 60, domain.StatusPending)}
	opts := NewSlotOptions(domain.DefaultTeacherPolicy(1), 60, 0, false, false)

	got := CheckAvailableAt(monday.Add(9*time.Hour+30*time.Minute), 60, rules, bookings, nil, farNow, opts)

	assert.False(t, got.IsAvailable)
	assert.Equal(t, domain.ReasonOutsideHours, got.Reason)
}
