package list_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
	msgInvalidDayOfWeek = "некорректный день недели"
	msgInvalidIsActive  = "некорректное значение isActive"
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

// Handle GET /api/v1/teachers/{teacherId}/availability
// Query params: dayOfWeek, kind, isActive (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	req := &models.ListRulesRequest{TeacherID: teacherID}

	req.DayOfWeek, err = handlers.QueryInt(r, "dayOfWeek")
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability - Invalid dayOfWeek: %v", err)
		handlers.RespondFieldError(w, "dayOfWeek", msgInvalidDayOfWeek)
		return
	}

	req.IsActive, err = handlers.QueryBool(r, "isActive")
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability - Invalid isActive: %v", err)
		handlers.RespondFieldError(w, "isActive", msgInvalidIsActive)
		return
	}

	if kind := r.URL.Query().Get("kind"); kind != "" {
		req.Kind = &kind
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /teachers/{id}/availability - Invalid filter: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/availability - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/availability - Failed to list rules: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teachers/{id}/availability - Rules retrieved successfully: teacher_id=%d, count=%d", teacherID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
