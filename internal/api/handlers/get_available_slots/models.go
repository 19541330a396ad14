package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TeacherID       int64          `json:"teacherId"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	DurationMinutes int            `json:"durationMinutes"`
	BreakMinutes    int            `json:"breakMinutes"`
	TotalSlots      int            `json:"totalSlots"`
	AvailableCount  int            `json:"availableCount"`
	Slots           []SlotResponse `json:"slots"`
}

// SlotResponse модель временного слота
type SlotResponse struct {
	Date        string `json:"date"`
	DayOfWeek   int    `json:"dayOfWeek"`
	DayName     string `json:"dayName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StartsAt    string `json:"startsAt"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
	BookingID   *int64 `json:"bookingId,omitempty"`
	RuleID      string `json:"ruleId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Date:        slot.Date.Format(domain.DateFormat),
			DayOfWeek:   slot.DayOfWeek,
			DayName:     slot.DayName,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			StartsAt:    slot.StartsAt.Format(time.RFC3339),
			IsAvailable: slot.IsAvailable,
			Reason:      slot.Reason,
			BookingID:   slot.BookingID,
			RuleID:      slot.RuleID,
		}
	}

	return &AvailableSlotsResponse{
		TeacherID:       resp.TeacherID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		BreakMinutes:    resp.BreakMinutes,
		TotalSlots:      len(slots),
		AvailableCount:  resp.AvailableCount,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров. Даты разбираются в UTC.
func ToUseCaseRequest(teacherID int64, startDateStr, endDateStr string, duration, breakTime *int, includeShortNotice bool) (*getAvailableSlots.Request, string, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, "startDate", err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, "endDate", err
	}

	return &getAvailableSlots.Request{
		TeacherID:          teacherID,
		StartDate:          startDate,
		EndDate:            endDate,
		DurationMinutes:    duration,
		BreakMinutes:       breakTime,
		IncludeShortNotice: includeShortNotice,
	}, "", nil
}
