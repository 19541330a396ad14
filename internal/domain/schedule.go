package domain

import "time"

// DailySchedule summarises one calendar day
type DailySchedule struct {
	Date                time.Time
	DayOfWeek           int
	DayName             string
	Slots               []TimeSlot
	TotalAvailableHours float64
	TotalBookedHours    float64
	HasAvailability     bool
}

// WeeklySchedule summarises seven consecutive days
type WeeklySchedule struct {
	WeekStart           time.Time
	WeekEnd             time.Time
	Days                []DailySchedule
	TotalAvailableHours float64
	TotalBookedHours    float64
	AvailableSlots      int
	BookedSlots         int
}

// AvailabilityStats summarises a teacher's rule set
type AvailabilityStats struct {
	TotalRules        int
	ActiveRules       int
	ActiveDays        []int
	ActiveDayNames    []string
	TotalHoursPerWeek float64
	EarliestStartTime string
	LatestEndTime     string
	AvgHoursPerDay    float64
}
