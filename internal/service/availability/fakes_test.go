package availability

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var errDBDown = errors.New("db down")

type fakeRuleRepo struct {
	mu      sync.Mutex
	rules   map[uuid.UUID]domain.AvailabilityRule
	failOn  map[string]error
	creates int
}

func newFakeRuleRepo(rules ...*domain.AvailabilityRule) *fakeRuleRepo {
	repo := &fakeRuleRepo{
		rules:  make(map[uuid.UUID]domain.AvailabilityRule),
		failOn: make(map[string]error),
	}
	for _, rule := range rules {
		repo.rules[rule.ID] = *rule
	}
	return repo
}

func (r *fakeRuleRepo) Create(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["Create"]; err != nil {
		return nil, err
	}
	r.creates++
	rule.ID = uuid.New()
	rule.CreatedAt = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	rule.UpdatedAt = rule.CreatedAt
	r.rules[rule.ID] = *rule
	return rule, nil
}

func (r *fakeRuleRepo) GetByID(_ context.Context, teacherID int64, id uuid.UUID) (*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok || rule.TeacherID != teacherID {
		return nil, ruleRepo.ErrRuleNotFound
	}
	return &rule, nil
}

func (r *fakeRuleRepo) List(_ context.Context, filter domain.RuleFilter) ([]*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["List"]; err != nil {
		return nil, err
	}
	return r.selectLocked(func(rule domain.AvailabilityRule) bool {
		return rule.TeacherID == filter.TeacherID &&
			(filter.DayOfWeek == nil || rule.DayOfWeek == *filter.DayOfWeek) &&
			(filter.Kind == nil || rule.Kind == *filter.Kind) &&
			(filter.IsActive == nil || rule.IsActive == *filter.IsActive)
	}), nil
}

func (r *fakeRuleRepo) ListByTeacherDay(_ context.Context, teacherID int64, day int) ([]*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["ListByTeacherDay"]; err != nil {
		return nil, err
	}
	return r.selectLocked(func(rule domain.AvailabilityRule) bool {
		return rule.TeacherID == teacherID && rule.DayOfWeek == day
	}), nil
}

func (r *fakeRuleRepo) Update(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[rule.ID]; !ok {
		return nil, ruleRepo.ErrRuleNotFound
	}
	r.rules[rule.ID] = *rule
	return rule, nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, teacherID int64, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok || rule.TeacherID != teacherID {
		return ruleRepo.ErrRuleNotFound
	}
	delete(r.rules, id)
	return nil
}

func (r *fakeRuleRepo) DeleteByTeacherDay(_ context.Context, teacherID int64, day int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["DeleteByTeacherDay"]; err != nil {
		return 0, err
	}
	var deleted int64
	for id, rule := range r.rules {
		if rule.TeacherID == teacherID && rule.DayOfWeek == day {
			delete(r.rules, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeRuleRepo) selectLocked(keep func(domain.AvailabilityRule) bool) []*domain.AvailabilityRule {
	out := make([]*domain.AvailabilityRule, 0)
	for _, rule := range r.rules {
		if keep(rule) {
			rule := rule
			out = append(out, &rule)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})
	return out
}

func (r *fakeRuleRepo) onDay(teacherID int64, day int) []*domain.AvailabilityRule {
	rules, _ := r.ListByTeacherDay(context.Background(), teacherID, day)
	return rules
}

type fakeTeachers map[int64]bool

func (f fakeTeachers) Exists(_ context.Context, teacherID int64) (bool, error) {
	if teacherID < 0 {
		return false, errDBDown
	}
	return f[teacherID], nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	conflicts map[string]int
	failed    map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{conflicts: map[string]int{}, failed: map[string]int{}}
}

func (m *fakeMetrics) ObserveConflict(op string) {
	m.conflicts[op]++
}

func (m *fakeMetrics) ObserveBatchFailures(op string, failed int) {
	m.failed[op] += failed
}

const teacherID int64 = 42

type fixture struct {
	svc     *Service
	repo    *fakeRuleRepo
	tx      *fakeTxManager
	metrics *fakeMetrics
}

func newFixture(rules ...*domain.AvailabilityRule) *fixture {
	f := &fixture{
		repo:    newFakeRuleRepo(rules...),
		tx:      &fakeTxManager{},
		metrics: newFakeMetrics(),
	}
	f.svc = NewService(f.repo, fakeTeachers{teacherID: true}, f.tx, f.metrics, logger.NewNop())
	return f
}

func existingRule(day int, start, end string, active bool) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        uuid.New(),
		TeacherID: teacherID,
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Kind:      domain.KindRegular,
		IsActive:  active,
	}
}
