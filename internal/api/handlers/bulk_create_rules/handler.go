package bulk_create_rules

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

// Handle POST /api/v1/teachers/{teacherId}/availability/bulk
// Ответ 200 даже при частичных ошибках, итог в successCount/failureCount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/bulk - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	var req BulkCreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability/bulk - Validation failed: teacher_id=%d, items=%d", teacherID, len(req.Rules))
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.BulkCreate(r.Context(), req.ToServiceRequest(teacherID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /teachers/{id}/availability/bulk - Invalid input: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondFieldError(w, "rules", err.Error())

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/{id}/availability/bulk - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("POST /teachers/{id}/availability/bulk - Failed to create rules: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/{id}/availability/bulk - Bulk create finished: teacher_id=%d, succeeded=%d, failed=%d",
		teacherID, result.SuccessCount, result.FailureCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
