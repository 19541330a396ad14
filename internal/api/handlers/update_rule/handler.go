package update_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidRuleID    = "некорректный ID правила"
	msgInvalidBody      = "некорректное тело запроса"
	msgEmptyUpdate      = "нет полей для обновления"
	msgDayNotUpdatable  = "день недели нельзя изменить, используйте копирование правил"
	msgTeacherNotFound  = "преподаватель не найден"
	msgRuleNotFound     = "правило доступности не найдено"
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

// Handle PATCH /api/v1/teachers/{teacherId}/availability/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	ruleID, err := handlers.RuleID(r)
	if err != nil {
		h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.DayOfWeek != nil {
		h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Attempt to change day: rule_id=%s", ruleID)
		handlers.RespondFieldError(w, "dayOfWeek", msgDayNotUpdatable)
		return
	}

	if req.IsEmpty() {
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Validation failed: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondValidationError(w, err)
		return
	}

	rule, err := h.service.Update(r.Context(), req.ToServiceRequest(teacherID, ruleID))
	if err != nil {
		var conflictErr *availability.ConflictError
		switch {
		case handlers.IsValidationError(err), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Invalid rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Rule not found: teacher_id=%d, rule_id=%s", teacherID, ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /teachers/{id}/availability/{id} - Conflict: rule_id=%s, conflicts=%d", ruleID, len(conflictErr.Rules))
			handlers.RespondConflict(w, msgConflict, models.FromDomainRules(conflictErr.Rules))

		default:
			h.logger.Error("PATCH /teachers/{id}/availability/{id} - Failed to update rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /teachers/{id}/availability/{id} - Rule updated successfully: teacher_id=%d, rule_id=%s", teacherID, ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
