package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/batch"
)

// Имена операций для метрик
const (
	opCreate     = "create"
	opUpdate     = "update"
	opCheck      = "check_conflict"
	opBulkCreate = "bulk_create"
	opCopy       = "copy"
)

// Service сервис управления правилами доступности преподавателей
type Service struct {
	ruleRepo    RuleRepository
	teacherRepo TeacherRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса правил доступности
func NewService(
	ruleRepo RuleRepository,
	teacherRepo TeacherRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		teacherRepo: teacherRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Create создает правило. Активное правило проверяется на пересечения
// с активными правилами того же дня в serializable транзакции.
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: teacher=%d day=%d %s-%s", req.TeacherID, req.DayOfWeek, req.StartTime, req.EndTime)

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	rule, err := s.createRule(ctx, req.TeacherID, req.RuleInput, opCreate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: created rule id=%s for teacher=%d", rule.ID, req.TeacherID)
	resp := models.FromDomainRule(rule)
	return &resp, nil
}

// List возвращает правила преподавателя с опциональными фильтрами
func (s *Service) List(ctx context.Context, req *models.ListRulesRequest) (*models.RuleListResponse, error) {
	filter := domain.RuleFilter{
		TeacherID: req.TeacherID,
		DayOfWeek: req.DayOfWeek,
		IsActive:  req.IsActive,
	}

	if req.DayOfWeek != nil && (*req.DayOfWeek < domain.MinDayOfWeek || *req.DayOfWeek > domain.MaxDayOfWeek) {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}
	if req.Kind != nil {
		kind, err := models.ToDomainKind(*req.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Kind = &kind
	}

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.RuleListResponse{
		Rules: models.FromDomainRules(rules),
		Total: len(rules),
	}, nil
}

// Update частично обновляет правило. Если после обновления правило активно,
// новый интервал проверяется на пересечения, само правило исключается.
func (s *Service) Update(ctx context.Context, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: teacher=%d rule=%s", req.TeacherID, req.RuleID)

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	var updated *domain.AvailabilityRule
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Блокируем текущее правило
		rule, err := s.ruleRepo.GetByID(ctx, req.TeacherID, req.RuleID)
		if err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("%w: Update - get rule: %v", ErrInternal, err)
		}

		// 2. Накладываем изменения
		start, end := rule.StartTime.String(), rule.EndTime.String()
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		interval, err := scheduling.ValidateInterval(rule.DayOfWeek, start, end)
		if err != nil {
			return err
		}
		if req.Kind != nil {
			kind, err := models.ToDomainKind(*req.Kind)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			rule.Kind = kind
		}
		if req.IsActive != nil {
			rule.IsActive = *req.IsActive
		}
		rule.StartTime = interval.Start
		rule.EndTime = interval.End

		// 3. Проверяем пересечения для активного правила
		if rule.IsActive {
			if err := s.checkConflicts(ctx, req.TeacherID, interval, rule.Kind, &rule.ID, opUpdate); err != nil {
				return err
			}
		}

		// 4. Сохраняем
		updated, err = s.ruleRepo.Update(ctx, rule)
		if err != nil {
			if errors.Is(err, ruleRepo.ErrRuleNotFound) {
				return ErrRuleNotFound
			}
			return fmt.Errorf("%w: Update - save rule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logUnlessExpected("Update", err)
		return nil, s.classify(err)
	}

	s.logger.Info("Update: updated rule id=%s", updated.ID)
	resp := models.FromDomainRule(updated)
	return &resp, nil
}

// Delete удаляет правило преподавателя
func (s *Service) Delete(ctx context.Context, teacherID int64, ruleID uuid.UUID) error {
	if err := s.ensureTeacher(ctx, teacherID); err != nil {
		return err
	}

	if err := s.ruleRepo.Delete(ctx, teacherID, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule=%s not found for teacher=%d", ruleID, teacherID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule=%s: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted rule=%s of teacher=%d", ruleID, teacherID)
	return nil
}

// CheckConflict проверяет интервал на пересечения без записи
func (s *Service) CheckConflict(ctx context.Context, req *models.CheckConflictRequest) (*models.ConflictCheckResponse, error) {
	interval, err := scheduling.ValidateInterval(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	kind, err := models.ToDomainKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListByTeacherDay(ctx, req.TeacherID, req.DayOfWeek)
	if err != nil {
		s.logger.Error("CheckConflict: repository error for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: CheckConflict - repository error: %v", ErrInternal, err)
	}

	conflicts := scheduling.DetectConflicts(interval, kind, rules, req.ExcludeRuleID)
	if len(conflicts) > 0 {
		s.metrics.ObserveConflict(opCheck)
	}

	return &models.ConflictCheckResponse{
		HasConflict:      len(conflicts) > 0,
		ConflictingRules: models.FromDomainRules(conflicts),
	}, nil
}

// BulkCreate создает правила по одному, каждое в своей транзакции.
// Ошибка элемента не прерывает пакет, успешные элементы видны следующим.
func (s *Service) BulkCreate(ctx context.Context, req *models.BulkCreateRequest) (*models.BatchResponse, error) {
	s.logger.Info("BulkCreate: teacher=%d items=%d", req.TeacherID, len(req.Rules))

	if len(req.Rules) == 0 || len(req.Rules) > domain.MaxBulkRules {
		return nil, fmt.Errorf("%w: rules count must be between 1 and %d", ErrInvalidInput, domain.MaxBulkRules)
	}

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	result := batch.Apply(req.Rules, func(_ int, item models.RuleInput) (*domain.AvailabilityRule, error) {
		return s.createRule(ctx, req.TeacherID, item, opBulkCreate)
	})

	s.metrics.ObserveBatchFailures(opBulkCreate, result.FailureCount())
	s.logger.Info("BulkCreate: teacher=%d succeeded=%d failed=%d", req.TeacherID, result.SuccessCount(), result.FailureCount())

	return models.FromBatchResult(result), nil
}

// Copy дублирует активные правила исходного дня на целевые дни.
// Исходный день среди целевых пропускается. При ReplaceExisting правила
// целевого дня предварительно удаляются.
func (s *Service) Copy(ctx context.Context, req *models.CopyRulesRequest) (*models.BatchResponse, error) {
	s.logger.Info("Copy: teacher=%d source=%d targets=%v replace=%t", req.TeacherID, req.SourceDay, req.TargetDays, req.ReplaceExisting)

	if err := validateCopyDays(req.SourceDay, req.TargetDays); err != nil {
		return nil, err
	}

	if err := s.ensureTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	active := true
	sourceRules, err := s.ruleRepo.List(ctx, domain.RuleFilter{
		TeacherID: req.TeacherID,
		DayOfWeek: &req.SourceDay,
		IsActive:  &active,
	})
	if err != nil {
		s.logger.Error("Copy: failed to load source rules for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: Copy - load source rules: %v", ErrInternal, err)
	}

	result := batch.Result[*domain.AvailabilityRule, models.RuleInput]{
		Successes: make([]*domain.AvailabilityRule, 0),
		Failures:  make([]batch.Failure[models.RuleInput], 0),
	}

	offset := 0
	for _, target := range uniqueDays(req.TargetDays) {
		if target == req.SourceDay {
			continue
		}

		items := make([]models.RuleInput, 0, len(sourceRules))
		for _, rule := range sourceRules {
			items = append(items, models.RuleInput{
				DayOfWeek: target,
				StartTime: rule.StartTime.String(),
				EndTime:   rule.EndTime.String(),
				Kind:      string(rule.Kind),
			})
		}

		var replaceErr error
		if req.ReplaceExisting {
			deleted, err := s.ruleRepo.DeleteByTeacherDay(ctx, req.TeacherID, target)
			if err != nil {
				s.logger.Error("Copy: failed to clear day=%d for teacher=%d: %v", target, req.TeacherID, err)
				replaceErr = fmt.Errorf("%w: Copy - clear target day: %v", ErrInternal, err)
			} else {
				s.logger.Info("Copy: cleared %d rule(s) on day=%d for teacher=%d", deleted, target, req.TeacherID)
			}
		}

		result.Merge(batch.ApplyFrom(offset, items, func(_ int, item models.RuleInput) (*domain.AvailabilityRule, error) {
			if replaceErr != nil {
				return nil, replaceErr
			}
			return s.createRule(ctx, req.TeacherID, item, opCopy)
		}))
		offset += len(items)
	}

	s.metrics.ObserveBatchFailures(opCopy, result.FailureCount())
	s.logger.Info("Copy: teacher=%d succeeded=%d failed=%d", req.TeacherID, result.SuccessCount(), result.FailureCount())

	return models.FromBatchResult(result), nil
}

// GetStats сводка по всем правилам преподавателя
func (s *Service) GetStats(ctx context.Context, teacherID int64) (*models.StatsResponse, error) {
	if err := s.ensureTeacher(ctx, teacherID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.List(ctx, domain.RuleFilter{TeacherID: teacherID})
	if err != nil {
		s.logger.Error("GetStats: repository error for teacher=%d: %v", teacherID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(scheduling.ComputeStats(rules)), nil
}

// createRule валидирует и сохраняет одно правило в serializable транзакции
func (s *Service) createRule(ctx context.Context, teacherID int64, input models.RuleInput, op string) (*domain.AvailabilityRule, error) {
	interval, err := scheduling.ValidateInterval(input.DayOfWeek, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	kind, err := models.ToDomainKind(input.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rule := &domain.AvailabilityRule{
		TeacherID: teacherID,
		DayOfWeek: interval.DayOfWeek,
		StartTime: interval.Start,
		EndTime:   interval.End,
		Kind:      kind,
		IsActive:  input.Active(),
	}

	var created *domain.AvailabilityRule
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if rule.IsActive {
			if err := s.checkConflicts(ctx, teacherID, interval, rule.Kind, nil, op); err != nil {
				return err
			}
		}

		var err error
		created, err = s.ruleRepo.Create(ctx, rule)
		if err != nil {
			return fmt.Errorf("%w: createRule - save rule: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logUnlessExpected(op, err)
		return nil, s.classify(err)
	}

	return created, nil
}

// checkConflicts читает правила дня (FOR UPDATE внутри транзакции)
// и возвращает *ConflictError при пересечении
func (s *Service) checkConflicts(ctx context.Context, teacherID int64, interval scheduling.Interval, kind domain.RuleKind, self *uuid.UUID, op string) error {
	rules, err := s.ruleRepo.ListByTeacherDay(ctx, teacherID, interval.DayOfWeek)
	if err != nil {
		return fmt.Errorf("%w: checkConflicts - load day rules: %v", ErrInternal, err)
	}

	conflicts := scheduling.DetectConflicts(interval, kind, rules, self)
	if len(conflicts) > 0 {
		s.metrics.ObserveConflict(op)
		return &ConflictError{Rules: conflicts}
	}
	return nil
}

// ensureTeacher возвращает ErrTeacherNotFound для неизвестного преподавателя
func (s *Service) ensureTeacher(ctx context.Context, teacherID int64) error {
	exists, err := s.teacherRepo.Exists(ctx, teacherID)
	if err != nil {
		s.logger.Error("ensureTeacher: failed to check teacher=%d: %v", teacherID, err)
		return fmt.Errorf("%w: ensureTeacher - repository error: %v", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("ensureTeacher: teacher=%d not found", teacherID)
		return ErrTeacherNotFound
	}
	return nil
}

// classify оставляет ошибки предметной области как есть, остальное
// (например, ошибки транзакции) заворачивает в ErrInternal
func (s *Service) classify(err error) error {
	if isExpected(err) || errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (s *Service) logUnlessExpected(op string, err error) {
	if isExpected(err) {
		s.logger.Warn("%s: rejected: %v", op, err)
		return
	}
	s.logger.Error("%s: failed: %v", op, err)
}

func isExpected(err error) bool {
	var intervalErr *scheduling.IntervalError
	return errors.As(err, &intervalErr) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrRuleNotFound) ||
		errors.Is(err, ErrInvalidInput)
}

func validateCopyDays(source int, targets []int) error {
	if source < domain.MinDayOfWeek || source > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: sourceDay must be between 0 and 6", ErrInvalidInput)
	}
	if len(targets) == 0 {
		return fmt.Errorf("%w: targetDays must not be empty", ErrInvalidInput)
	}
	for _, day := range targets {
		if day < domain.MinDayOfWeek || day > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: targetDays must be between 0 and 6", ErrInvalidInput)
		}
	}
	return nil
}

// uniqueDays убирает повторы, сохраняя порядок
func uniqueDays(days []int) []int {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return out
}
