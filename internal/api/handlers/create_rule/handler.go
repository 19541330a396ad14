package create_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidBody      = "некорректное тело запроса"
	msgTeacherNotFound  = "преподаватель не найден"
	msgConflict         = "правило пересекается с существующими правилами"
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

// Handle POST /api/v1/teachers/{teacherId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("POST /teachers/{id}/availability - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	var req CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /teachers/{id}/availability - Validation failed: teacher_id=%d, error=%v", teacherID, err)
		handlers.RespondValidationError(w, err)
		return
	}

	rule, err := h.service.Create(r.Context(), req.ToServiceRequest(teacherID))
	if err != nil {
		var conflictErr *availability.ConflictError
		switch {
		case handlers.IsValidationError(err), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /teachers/{id}/availability - Invalid rule: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("POST /teachers/{id}/availability - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /teachers/{id}/availability - Conflict: teacher_id=%d, conflicts=%d", teacherID, len(conflictErr.Rules))
			handlers.RespondConflict(w, msgConflict, models.FromDomainRules(conflictErr.Rules))

		default:
			h.logger.Error("POST /teachers/{id}/availability - Failed to create rule: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teachers/{id}/availability - Rule created successfully: teacher_id=%d, rule_id=%s", teacherID, rule.ID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
