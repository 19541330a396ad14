package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidTeacherID = "некорректный ID преподавателя"
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

// Handle GET /api/v1/teachers/{teacherId}/availability/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	teacherID, err := handlers.TeacherID(r)
	if err != nil {
		h.logger.Warn("GET /teachers/{id}/availability/stats - Invalid teacher ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeacherID)
		return
	}

	stats, err := h.service.GetStats(r.Context(), teacherID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTeacherNotFound):
			h.logger.Warn("GET /teachers/{id}/availability/stats - Teacher not found: teacher_id=%d", teacherID)
			handlers.RespondTeacherNotFound(w, msgTeacherNotFound)

		default:
			h.logger.Error("GET /teachers/{id}/availability/stats - Failed to get stats: teacher_id=%d, error=%v", teacherID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teachers/{id}/availability/stats - Stats retrieved successfully: teacher_id=%d", teacherID)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
