package list_rules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	got  *models.ListRulesRequest
	resp *models.RuleListResponse
	err  error
}

func (f *fakeService) List(_ context.Context, req *models.ListRulesRequest) (*models.RuleListResponse, error) {
	f.got = req
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/teachers/{teacherId}/availability", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{resp: &models.RuleListResponse{Rules: []models.RuleResponse{{DayOfWeek: 2}}, Total: 1}}

	rec := serve(svc, "/api/v1/teachers/42/availability?dayOfWeek=2&kind=blackout&isActive=false")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(42), svc.got.TeacherID)
	require.NotNil(t, svc.got.DayOfWeek)
	assert.Equal(t, 2, *svc.got.DayOfWeek)
	require.NotNil(t, svc.got.Kind)
	assert.Equal(t, "blackout", *svc.got.Kind)
	require.NotNil(t, svc.got.IsActive)
	assert.False(t, *svc.got.IsActive)

	var body models.RuleListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{resp: &models.RuleListResponse{Rules: []models.RuleResponse{}}}

	rec := serve(svc, "/api/v1/teachers/42/availability")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.DayOfWeek)
	assert.Nil(t, svc.got.Kind)
	assert.Nil(t, svc.got.IsActive)
}

func TestHandle_InvalidQuery(t *testing.T) {
	for _, target := range []string{
		"/api/v1/teachers/x/availability",
		"/api/v1/teachers/42/availability?dayOfWeek=mon",
		"/api/v1/teachers/42/availability?isActive=maybe",
	} {
		svc := &fakeService{}
		rec := serve(svc, target)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Nil(t, svc.got, target)
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{availability.ErrInvalidInput, http.StatusBadRequest, handlers.CodeInvalidInput},
		{availability.ErrTeacherNotFound, http.StatusNotFound, handlers.CodeTeacherNotFound},
		{errors.New("boom"), http.StatusInternalServerError, handlers.CodeInternal},
	}

	for _, tt := range tests {
		rec := serve(&fakeService{err: tt.err}, "/api/v1/teachers/42/availability")

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, tt.code, body.Code)
	}
}
