package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/pkg/batch"
)

// Request модели

// RuleInput данные одного правила (создание, элемент пакета, копия)
type RuleInput struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Kind      string `json:"kind,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"` // nil = true
}

// CreateRuleRequest запрос на создание правила
type CreateRuleRequest struct {
	TeacherID int64
	RuleInput
}

// ListRulesRequest запрос списка правил с фильтрами
type ListRulesRequest struct {
	TeacherID int64
	DayOfWeek *int
	Kind      *string
	IsActive  *bool
}

// UpdateRuleRequest частичное обновление правила.
// День недели не меняется, для переноса используется копирование.
type UpdateRuleRequest struct {
	TeacherID int64
	RuleID    uuid.UUID
	StartTime *string
	EndTime   *string
	Kind      *string
	IsActive  *bool
}

// CheckConflictRequest проверка интервала без записи
type CheckConflictRequest struct {
	TeacherID     int64
	DayOfWeek     int
	StartTime     string
	EndTime       string
	Kind          string // пусто = regular
	ExcludeRuleID *uuid.UUID
}

// BulkCreateRequest пакетное создание правил
type BulkCreateRequest struct {
	TeacherID int64
	Rules     []RuleInput
}

// CopyRulesRequest копирование активных правил дня на другие дни
type CopyRulesRequest struct {
	TeacherID       int64
	SourceDay       int
	TargetDays      []int
	ReplaceExisting bool
}

// Response модели

// RuleResponse правило доступности
type RuleResponse struct {
	ID        string    `json:"id"`
	TeacherID int64     `json:"teacherId"`
	DayOfWeek int       `json:"dayOfWeek"`
	DayName   string    `json:"dayName"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Kind      string    `json:"kind"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RuleListResponse список правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
	Total int            `json:"total"`
}

// ConflictCheckResponse результат проверки пересечений
type ConflictCheckResponse struct {
	HasConflict      bool           `json:"hasConflict"`
	ConflictingRules []RuleResponse `json:"conflictingRules"`
}

// BatchFailure неуспешный элемент пакета
type BatchFailure struct {
	Index int       `json:"index"`
	Error string    `json:"error"`
	Item  RuleInput `json:"item"`
}

// BatchResponse итог пакетной операции
type BatchResponse struct {
	SuccessCount int            `json:"successCount"`
	FailureCount int            `json:"failureCount"`
	Successes    []RuleResponse `json:"successes"`
	Failures     []BatchFailure `json:"failures"`
}

// StatsResponse сводка по правилам преподавателя
type StatsResponse struct {
	TotalRules        int      `json:"totalRules"`
	ActiveRules       int      `json:"activeRules"`
	ActiveDays        []int    `json:"activeDays"`
	ActiveDayNames    []string `json:"activeDayNames"`
	TotalHoursPerWeek float64  `json:"totalHoursPerWeek"`
	EarliestStartTime string   `json:"earliestStartTime"`
	LatestEndTime     string   `json:"latestEndTime"`
	AvgHoursPerDay    float64  `json:"avgHoursPerDay"`
}

// Конвертеры

// ToDomainKind разбирает вид правила, пустая строка означает regular
func ToDomainKind(kind string) (domain.RuleKind, error) {
	if kind == "" {
		return domain.KindRegular, nil
	}
	k := domain.RuleKind(kind)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown rule kind %q", kind)
	}
	return k, nil
}

// Active значение isActive с учётом значения по умолчанию
func (in RuleInput) Active() bool {
	return in.IsActive == nil || *in.IsActive
}

// FromDomainRule конвертирует domain.AvailabilityRule в RuleResponse
func FromDomainRule(rule *domain.AvailabilityRule) RuleResponse {
	return RuleResponse{
		ID:        rule.ID.String(),
		TeacherID: rule.TeacherID,
		DayOfWeek: rule.DayOfWeek,
		DayName:   scheduling.DayName(rule.DayOfWeek),
		StartTime: rule.StartTime.String(),
		EndTime:   rule.EndTime.String(),
		Kind:      string(rule.Kind),
		IsActive:  rule.IsActive,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

// FromDomainRules конвертирует список правил
func FromDomainRules(rules []*domain.AvailabilityRule) []RuleResponse {
	out := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		out = append(out, FromDomainRule(rule))
	}
	return out
}

// FromBatchResult конвертирует результат пакетной операции
func FromBatchResult(result batch.Result[*domain.AvailabilityRule, RuleInput]) *BatchResponse {
	failures := make([]BatchFailure, 0, len(result.Failures))
	for _, f := range result.Failures {
		failures = append(failures, BatchFailure{
			Index: f.Index,
			Error: f.Err.Error(),
			Item:  f.Item,
		})
	}

	return &BatchResponse{
		SuccessCount: result.SuccessCount(),
		FailureCount: result.FailureCount(),
		Successes:    FromDomainRules(result.Successes),
		Failures:     failures,
	}
}

// FromDomainStats конвертирует сводку
func FromDomainStats(stats domain.AvailabilityStats) *StatsResponse {
	return &StatsResponse{
		TotalRules:        stats.TotalRules,
		ActiveRules:       stats.ActiveRules,
		ActiveDays:        stats.ActiveDays,
		ActiveDayNames:    stats.ActiveDayNames,
		TotalHoursPerWeek: stats.TotalHoursPerWeek,
		EarliestStartTime: stats.EarliestStartTime,
		LatestEndTime:     stats.LatestEndTime,
		AvgHoursPerDay:    stats.AvgHoursPerDay,
	}
}
