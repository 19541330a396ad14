package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// TeacherID извлекает teacherId из пути
func TeacherID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["teacherId"], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// RuleID извлекает ruleId из пути
func RuleID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["ruleId"])
}

// QueryInt читает необязательный целочисленный query параметр
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// QueryBool читает необязательный булев query параметр
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
