package domain

// Default policy values
const (
	DefaultAdvanceNoticeHours     = 24
	DefaultMaxAdvanceBookingHours = 720 // 30 days
)

// Slot generation defaults and bounds
const (
	DefaultSlotDurationMinutes = 60
	MinSlotDurationMinutes     = 15
	MaxSlotDurationMinutes     = 180

	DefaultBreakMinutes = 15
	MinBreakMinutes     = 0
	MaxBreakMinutes     = 60

	MaxSlotRangeDays = 62
)

// Weekly schedule defaults and bounds
const (
	DefaultWeeksCount  = 1
	MaxWeeksCount      = 12
	WeeklyBreakMinutes = 0
	DaysPerWeek        = 7
)

// Request bounds
const (
	MinProbeDuration = 15
	MaxProbeDuration = 480
	MaxBulkRules     = 100
	MinDayOfWeek     = 0
	MaxDayOfWeek     = 6
)

// Slot unavailability reasons
const (
	ReasonShortNotice     = "insufficient advance notice"
	ReasonAlreadyBooked   = "already booked"
	ReasonBeyondHorizon   = "beyond maximum advance booking window"
	ReasonBlackout        = "blocked by blackout"
	ReasonOutsideHours    = "outside availability hours"
	ReasonBookingConflict = "conflicts with existing booking"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses statuses of bookings that take time away from availability
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
