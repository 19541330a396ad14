package check_teacher_available

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkTeacherAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_teacher_available"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgMissingAt        = "параметр at обязателен"
	msgInvalidAt        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidDuration  = "некорректная длительность занятия"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgTeacherNotFound  = "преподаватель не найден"
)

type Handler struct {
	useCase CheckTeacherAvailableUseCase
	logger  Logger
}

func NewHandler(useCase CheckTeacherAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/teachers/{teacherId}/availability-check
// Query params: at (required, RFC 3339), duration, excludeBookingId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability-check - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	query := r.URL.Query()
	atStr := query.Get("at")
	if atStr == "" {
		handlers.RespondFieldError(w, "at", msgMissingAt)
		return
	}
	at, err := time.Parse(time.RFC3339, atStr)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability-check - Invalid at: %v", err)
		handlers.RespondFieldError(w, "at", msgInvalidAt)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		handlers.RespondFieldError(w, "duration", msgInvalidDuration)
		return
	}

	req := &checkTeacherAvailable.Request{
		TeacherID:       teacherID,
		At:              at.UTC(),
		DurationMinutes: ptr.Value(duration, checkTeacherAvailable.DefaultDurationMinutes),
	}

	if raw := query.Get("excludeBookingId"); raw != "" {
		bookingID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondFieldError(w, "excludeBookingId", msgInvalidBookingID)
			return
		}
		req.ExcludeBookingID = &bookingID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkTeacherAvailable.ErrInvalidInput):
			h.logger.Warn("GET /teachers/{id}/availability-check - Invalid input: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, checkTeacherAvailable.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/availability-check - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/availability-check - Failed to check availability: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teachers/{id}/availability-check - Checked: teacher_id=%d, available=%t", teacherID, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
