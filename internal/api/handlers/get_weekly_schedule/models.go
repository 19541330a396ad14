package get_weekly_schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getWeeklySchedule "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_weekly_schedule"
)

// WeeklyScheduleResponse HTTP response model
type WeeklyScheduleResponse struct {
	TeacherID    int64          `json:"teacherId"`
	SlotDuration int            `json:"slotDuration"`
	Weeks        []WeekResponse `json:"weeks"`
}

// WeekResponse одна неделя
type WeekResponse struct {
	WeekStart           string        `json:"weekStart"`
	WeekEnd             string        `json:"weekEnd"`
	Days                []DayResponse `json:"days"`
	TotalAvailableHours float64       `json:"totalAvailableHours"`
	TotalBookedHours    float64       `json:"totalBookedHours"`
	AvailableSlots      int           `json:"availableSlots"`
	BookedSlots         int           `json:"bookedSlots"`
}

// DayResponse один день недели
type DayResponse struct {
	Date                string         `json:"date"`
	DayOfWeek           int            `json:"dayOfWeek"`
	DayName             string         `json:"dayName"`
	Slots               []SlotResponse `json:"slots"`
	TotalAvailableHours float64        `json:"totalAvailableHours"`
	TotalBookedHours    float64        `json:"totalBookedHours"`
	HasAvailability     bool           `json:"hasAvailability"`
}

// SlotResponse слот внутри дня
type SlotResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StartsAt    string `json:"startsAt"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
	BookingID   *int64 `json:"bookingId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeeklySchedule.Response) *WeeklyScheduleResponse {
	weeks := make([]WeekResponse, len(resp.Weeks))
	for i, week := range resp.Weeks {
		days := make([]DayResponse, len(week.Days))
		for j, day := range week.Days {
			days[j] = fromDomainDay(day)
		}

		weeks[i] = WeekResponse{
			WeekStart:           week.WeekStart.Format(domain.DateFormat),
			WeekEnd:             week.WeekEnd.Format(domain.DateFormat),
			Days:                days,
			TotalAvailableHours: week.TotalAvailableHours,
			TotalBookedHours:    week.TotalBookedHours,
			AvailableSlots:      week.AvailableSlots,
			BookedSlots:         week.BookedSlots,
		}
	}

	return &WeeklyScheduleResponse{
		TeacherID:    resp.TeacherID,
		SlotDuration: resp.SlotDuration,
		Weeks:        weeks,
	}
}

func fromDomainDay(day domain.DailySchedule) DayResponse {
	slots := make([]SlotResponse, len(day.Slots))
	for i, slot := range day.Slots {
		slots[i] = SlotResponse{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			StartsAt:    slot.StartsAt.Format(time.RFC3339),
			IsAvailable: slot.IsAvailable,
			Reason:      slot.Reason,
			BookingID:   slot.BookingID,
		}
	}

	return DayResponse{
		Date:                day.Date.Format(domain.DateFormat),
		DayOfWeek:           day.DayOfWeek,
		DayName:             day.DayName,
		Slots:               slots,
		TotalAvailableHours: day.TotalAvailableHours,
		TotalBookedHours:    day.TotalBookedHours,
		HasAvailability:     day.HasAvailability,
	}
}
