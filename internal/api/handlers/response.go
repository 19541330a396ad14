package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeTeacherNotFound = "TEACHER_NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ConflictResponse ответ 409 со списком пересекающихся правил
type ConflictResponse struct {
	ErrorResponse
	ConflictingRules interface{} `json:"conflictingRules"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с кодом, выбранным по статусу
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    codeForStatus(status),
		Message: message,
	})
}

// RespondBadRequest 400 без указания поля
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondFieldError 400 с указанием поля запроса
func RespondFieldError(w http.ResponseWriter, field, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:    CodeInvalidInput,
		Message: message,
		Field:   field,
	})
}

// RespondNotFound 404 для отсутствующего ресурса
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondTeacherNotFound 404 с отдельным кодом для неизвестного преподавателя
func RespondTeacherNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{
		Code:    CodeTeacherNotFound,
		Message: message,
	})
}

// RespondConflict 409 с пересекающимися правилами
func RespondConflict(w http.ResponseWriter, message string, conflictingRules interface{}) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{
		ErrorResponse: ErrorResponse{
			Code:    CodeConflict,
			Message: message,
		},
		ConflictingRules: conflictingRules,
	})
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает ровно один JSON объект из тела запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidInput
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}
