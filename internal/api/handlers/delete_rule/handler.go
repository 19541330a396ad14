package delete_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidRuleID    = "некорректный ID правила"
	msgTeacherNotFound  = "преподаватель не найден"
	msgRuleNotFound     = "правило доступности не найдено"
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

// Handle DELETE /api/v1/teachers/{teacherId}/availability/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("DELETE /teachers/{id}/availability/{id} - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	ruleID, err := handlers.RuleID(r)
	if err != nil {
		h.logger.Warn("DELETE /teachers/{id}/availability/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), teacherID, ruleID); err != nil {
		switch {
		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("DELETE /teachers/{id}/availability/{id} - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("DELETE /teachers/{id}/availability/{id} - Rule not found: teacher_id=%d, rule_id=%s", teacherID, ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /teachers/{id}/availability/{id} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /teachers/{id}/availability/{id} - Rule deleted successfully: teacher_id=%d, rule_id=%s", teacherID, ruleID)
	w.WriteHeader(http.StatusNoContent)
}
