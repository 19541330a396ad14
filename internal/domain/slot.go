package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// TimeSlot is a concrete dated window derived from availability rules.
// Slots are computed per request and never stored.
type TimeSlot struct {
	Date        time.Time
	DayOfWeek   int
	DayName     string
	StartTime   types.TimeString
	EndTime     types.TimeString
	StartsAt    time.Time
	IsAvailable bool
	Reason      string // empty when available
	BookingID   *int64 // set when the slot is taken by a booking
	RuleID      string
}

// EndsAt returns the instant the slot finishes
func (s *TimeSlot) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.EndTime.Minutes()-s.StartTime.Minutes()) * time.Minute)
}
