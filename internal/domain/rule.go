package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// RuleKind is the kind of an availability rule
type RuleKind string

const (
	KindRegular  RuleKind = "regular"  // weekly recurring window
	KindOneTime  RuleKind = "one_time" // a specific date, not expanded by the generator
	KindBlackout RuleKind = "blackout" // explicit unavailability
)

// IsValid returns true for a known kind
func (k RuleKind) IsValid() bool {
	switch k {
	case KindRegular, KindOneTime, KindBlackout:
		return true
	default:
		return false
	}
}

// Overlaps returns true if rules of kinds k and other must not overlap in time.
// Availability windows (regular, one_time) compete with each other and blackouts
// with blackouts; a blackout may lie inside an availability window.
func (k RuleKind) Overlaps(other RuleKind) bool {
	return (k == KindBlackout) == (other == KindBlackout)
}

// AvailabilityRule is a teacher's availability window on a day of the week
type AvailabilityRule struct {
	ID        uuid.UUID
	TeacherID int64
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      RuleKind
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the length of the window in minutes
func (r *AvailabilityRule) DurationMinutes() int {
	return r.EndTime.Minutes() - r.StartTime.Minutes()
}

// Hours returns the length of the window in hours
func (r *AvailabilityRule) Hours() float64 {
	return float64(r.DurationMinutes()) / 60
}

// GeneratesSlots returns true if the rule is expanded into bookable slots
func (r *AvailabilityRule) GeneratesSlots() bool {
	return r.IsActive && r.Kind == KindRegular
}

// Blocks returns true if the rule is an active blackout
func (r *AvailabilityRule) Blocks() bool {
	return r.IsActive && r.Kind == KindBlackout
}

// RuleFilter filters for listing a teacher's rules
type RuleFilter struct {
	TeacherID int64     // required
	DayOfWeek *int      // optional
	Kind      *RuleKind // optional
	IsActive  *bool     // optional
}
