package check_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidBody      = "некорректное тело запроса"
	msgTeacherNotFound  = "преподаватель не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/teachers/{teacherId}/availability/check-conflict
// Ничего не записывает, пересечение возвращается в теле ответа 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/check-conflict - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/check-conflict - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/check-conflict - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.CheckConflict(r.Context(), req.ToServiceRequest(teacherID))
	if err != nil {
		switch {
		case handlers.IsValidationError(err), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /teachers/{id}/availability/check-conflict - Invalid interval: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/{id}/availability/check-conflict - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("POST /teachers/{id}/availability/check-conflict - Failed to check conflicts: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/{id}/availability/check-conflict - Checked: teacher_id=%d, has_conflict=%t", teacherID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, result)
}
