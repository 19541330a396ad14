package get_weekly_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	teacherRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/teacher"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
)

// UseCase use case построения недельного расписания преподавателя
type UseCase struct {
	ruleRepo           RuleRepository
	bookingRepo        BookingRepository
	teacherRepo        TeacherRepository
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
	blackoutSuppresses bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	metrics Metrics,
	logger Logger,
	blackoutSuppresses bool,
) *UseCase {
	return &UseCase{
		ruleRepo:           ruleRepo,
		bookingRepo:        bookingRepo,
		teacherRepo:        teacherRepo,
		metrics:            metrics,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		blackoutSuppresses: blackoutSuppresses,
	}
}

// Execute строит расписание на несколько недель подряд
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и значения по умолчанию
	weeks, duration, err := applyDefaults(req)
	if err != nil {
		uc.logger.Warn("GetWeeklySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и начало первой недели
	now := uc.timeProvider.Now()
	weekStart := scheduling.WeekStart(now.UTC())
	if req.WeekStart != nil {
		weekStart = scheduling.StartOfDay(*req.WeekStart)
	}

	uc.logger.Info("GetWeeklySchedule: teacher=%d, weekStart=%s, weeks=%d",
		req.TeacherID, weekStart.Format(domain.DateFormat), weeks)

	// 3. Получаем политику преподавателя
	policy, err := uc.teacherRepo.GetPolicy(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
			uc.logger.Warn("GetWeeklySchedule: teacher id=%d not found", req.TeacherID)
			return nil, ErrTeacherNotFound
		}
		uc.logger.Error("GetWeeklySchedule: failed to get policy for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get teacher policy: %v", ErrInternal, err)
	}

	// 4. Получаем активные правила
	rules, err := uc.ruleRepo.ListActiveByTeacher(ctx, req.TeacherID)
	if err != nil {
		uc.logger.Error("GetWeeklySchedule: failed to get rules for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования за все недели
	to := weekStart.AddDate(0, 0, weeks*domain.DaysPerWeek)
	bookings, err := uc.bookingRepo.ListOccupying(ctx, req.TeacherID, weekStart, to)
	if err != nil {
		uc.logger.Error("GetWeeklySchedule: failed to get bookings for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Строим расписание; слоты недели идут встык, без перерыва
	opts := scheduling.WeeklyOptions{
		Slots:        scheduling.NewSlotOptions(policy, duration, domain.WeeklyBreakMinutes, false, uc.blackoutSuppresses),
		IncludeSlots: req.IncludeBookings,
	}
	schedules, err := scheduling.BuildWeeklySchedules(weekStart, weeks, rules, bookings, now, opts)
	if err != nil {
		uc.logger.Error("GetWeeklySchedule: failed to build schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to build schedule: %v", ErrInternal, err)
	}

	available, booked := 0, 0
	for _, week := range schedules {
		available += week.AvailableSlots
		booked += week.BookedSlots
	}
	uc.metrics.ObserveSlots(available, booked)

	return &Response{
		TeacherID:    req.TeacherID,
		SlotDuration: duration,
		Weeks:        schedules,
	}, nil
}
