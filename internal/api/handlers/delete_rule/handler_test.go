package delete_rule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	calls   int
	teacher int64
	rule    uuid.UUID
	err     error
}

func (f *fakeService) Delete(_ context.Context, teacherID int64, ruleID uuid.UUID) error {
	f.calls++
	f.teacher, f.rule = teacherID, ruleID
	return f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/teachers/{teacherId}/availability/{ruleId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle_NoContent(t *testing.T) {
	ruleID := uuid.New()
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/teachers/7/availability/"+ruleID.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, int64(7), svc.teacher)
	assert.Equal(t, ruleID, svc.rule)
}

func TestHandle_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad teacher", "/api/v1/teachers/-1/availability/" + uuid.NewString(), nil, http.StatusBadRequest},
		{"bad rule", "/api/v1/teachers/7/availability/123", nil, http.StatusBadRequest},
		{"teacher missing", "/api/v1/teachers/7/availability/" + uuid.NewString(), availability.ErrTeacherNotFound, http.StatusNotFound},
		{"rule missing", "/api/v1/teachers/7/availability/" + uuid.NewString(), availability.ErrRuleNotFound, http.StatusNotFound},
		{"internal", "/api/v1/teachers/7/availability/" + uuid.NewString(), errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
