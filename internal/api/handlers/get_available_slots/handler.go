package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidTeacherID   = "некорректный ID преподавателя"
	msgMissingDates       = "startDate и endDate обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "некорректная длительность слота"
	msgInvalidBreakTime   = "некорректная длительность перерыва"
	msgInvalidShortNotice = "некорректное значение includeShortNotice"
	msgTeacherNotFound    = "преподаватель не найден"
)

type Handler struct {
	useCase SlotsUseCase
	logger  Logger
}

func NewHandler(useCase SlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/slots
// Query params: startDate, endDate (required, YYYY-MM-DD), duration, breakTime, includeShortNotice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/slots - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	query := r.URL.Query()
	startDateStr, endDateStr := query.Get("startDate"), query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /teachers/{id}/slots - Missing dates: teacher_id=%d", teacherID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		handlers.RespondFieldError(w, "duration", msgInvalidDuration)
		return
	}

	breakTime, err := handlers.QueryInt(r, "breakTime")
	if err != nil {
		handlers.RespondFieldError(w, "breakTime", msgInvalidBreakTime)
		return
	}

	includeShortNotice, err := handlers.QueryBool(r, "includeShortNotice")
	if err != nil {
		handlers.RespondFieldError(w, "includeShortNotice", msgInvalidShortNotice)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, field, err := ToUseCaseRequest(teacherID, startDateStr, endDateStr, duration, breakTime, ptr.Value(includeShortNotice, false))
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/slots - Invalid date format: %v", err)
		handlers.RespondFieldError(w, field, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /teachers/{id}/slots - Invalid input: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/slots - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/slots - Failed to get slots: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /teachers/{id}/slots - Slots retrieved successfully: teacher_id=%d, slots_count=%d, available=%d",
		teacherID, response.TotalSlots, response.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
