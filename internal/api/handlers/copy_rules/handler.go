package copy_rules

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

// Handle POST /api/v1/teachers/{teacherId}/availability/copy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/copy - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	var req CopyRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/copy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/copy - Validation failed: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.Copy(r.Context(), req.ToServiceRequest(teacherID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /teachers/{id}/availability/copy - Invalid input: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/{id}/availability/copy - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("POST /teachers/{id}/availability/copy - Failed to copy rules: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/{id}/availability/copy - Copy finished: teacher_id=%d, source=%d, succeeded=%d, failed=%d",
		teacherID, *req.SourceDay, result.SuccessCount, result.FailureCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
