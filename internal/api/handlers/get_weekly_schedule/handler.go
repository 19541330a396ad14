package get_weekly_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getWeeklySchedule "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_weekly_schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidTeacherID       = "некорректный ID преподавателя"
	msgInvalidWeekStart       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWeeks           = "некорректное количество недель"
	msgInvalidSlotDuration    = "некорректная длительность слота"
	msgInvalidIncludeBookings = "некорректное значение includeBookings"
	msgTeacherNotFound        = "преподаватель не найден"
)

type Handler struct {
	useCase GetWeeklyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/weekly-schedule
// Query params: weekStart (YYYY-MM-DD), weeks, includeBookings, slotDuration (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/weekly-schedule - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	req := &getWeeklySchedule.Request{TeacherID: teacherID}

	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		weekStart, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /teachers/{id}/weekly-schedule - Invalid weekStart: %v", err)
			handlers.RespondFieldError(w, "weekStart", msgInvalidWeekStart)
			return
		}
		req.WeekStart = &weekStart
	}

	weeks, err := handlers.QueryInt(r, "weeks")
	if err != nil {
		handlers.RespondFieldError(w, "weeks", msgInvalidWeeks)
		return
	}
	if weeks != nil && *weeks == 0 {
		handlers.RespondFieldError(w, "weeks", msgInvalidWeeks)
		return
	}
	req.Weeks = ptr.Value(weeks, 0)

	slotDuration, err := handlers.QueryInt(r, "slotDuration")
	if err != nil || (slotDuration != nil && *slotDuration == 0) {
		handlers.RespondFieldError(w, "slotDuration", msgInvalidSlotDuration)
		return
	}
	req.SlotDuration = ptr.Value(slotDuration, 0)

	includeBookings, err := handlers.QueryBool(r, "includeBookings")
	if err != nil {
		handlers.RespondFieldError(w, "includeBookings", msgInvalidIncludeBookings)
		return
	}
	req.IncludeBookings = ptr.Value(includeBookings, false)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getWeeklySchedule.ErrInvalidInput):
			h.logger.Warn("GET /teachers/{id}/weekly-schedule - Invalid input: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getWeeklySchedule.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/weekly-schedule - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/weekly-schedule - Failed to build schedule: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teachers/{id}/weekly-schedule - Schedule built successfully: teacher_id=%d, weeks=%d", teacherID, len(result.Weeks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
