package domain

// TeacherPolicy holds the scheduling settings of a teacher profile.
// The profile itself belongs to the accounts service.
type TeacherPolicy struct {
	TeacherID              int64
	AdvanceNoticeHours     int
	MaxAdvanceBookingHours int
	Timezone               string // declared zone, stored only
}

// DefaultTeacherPolicy returns the fallback policy for a teacher without settings
func DefaultTeacherPolicy(teacherID int64) *TeacherPolicy {
	return &TeacherPolicy{
		TeacherID:              teacherID,
		AdvanceNoticeHours:     DefaultAdvanceNoticeHours,
		MaxAdvanceBookingHours: DefaultMaxAdvanceBookingHours,
	}
}

// HasBookingHorizon returns true if bookings are limited in how far ahead they can be made
func (p *TeacherPolicy) HasBookingHorizon() bool {
	return p.MaxAdvanceBookingHours > 0
}
