package domain

import "time"

// BookingStatus represents the status of a lesson booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a lesson booking as seen by the scheduling engine.
// Bookings are owned by the booking service; this service only reads them.
type Booking struct {
	ID              int64
	TeacherID       int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          BookingStatus
}

// End returns the instant the booking finishes
func (b *Booking) End() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsOccupying returns true if the booking removes time from availability
func (b *Booking) IsOccupying() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking intersects [start, end).
// Touching boundaries are not an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.ScheduledAt.Before(end) && b.End().After(start)
}

// HoursBooked returns the booking duration in hours
func (b *Booking) HoursBooked() float64 {
	return float64(b.DurationMinutes) / 60
}
