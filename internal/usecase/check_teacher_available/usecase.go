package check_teacher_available

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	teacherRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/teacher"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
)

// UseCase проверяет, свободен ли преподаватель в заданный момент
type UseCase struct {
	ruleRepo           RuleRepository
	bookingRepo        BookingRepository
	teacherRepo        TeacherRepository
	timeProvider       TimeProvider
	logger             Logger
	blackoutSuppresses bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	teacherRepo TeacherRepository,
	logger Logger,
	blackoutSuppresses bool,
) *UseCase {
	return &UseCase{
		ruleRepo:           ruleRepo,
		bookingRepo:        bookingRepo,
		teacherRepo:        teacherRepo,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		blackoutSuppresses: blackoutSuppresses,
	}
}

// Execute выполняет проверку. Отказ по бизнес-причине не является ошибкой:
// он возвращается как IsAvailable=false с причиной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}

	uc.logger.Info("CheckTeacherAvailable: teacher=%d, at=%s, duration=%d",
		req.TeacherID, req.At.Format(time.RFC3339), duration)

	// 1. Валидация входных данных
	if req.TeacherID <= 0 {
		return nil, fmt.Errorf("%w: teacherID must be positive", ErrInvalidInput)
	}
	if req.At.IsZero() {
		return nil, fmt.Errorf("%w: at is required", ErrInvalidInput)
	}
	if duration < domain.MinProbeDuration || duration > domain.MaxProbeDuration {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinProbeDuration, domain.MaxProbeDuration)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем политику преподавателя
	policy, err := uc.teacherRepo.GetPolicy(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
			uc.logger.Warn("CheckTeacherAvailable: teacher id=%d not found", req.TeacherID)
			return nil, ErrTeacherNotFound
		}
		uc.logger.Error("CheckTeacherAvailable: failed to get policy for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get teacher policy: %v", ErrInternal, err)
	}

	// 4. Получаем активные правила
	rules, err := uc.ruleRepo.ListActiveByTeacher(ctx, req.TeacherID)
	if err != nil {
		uc.logger.Error("CheckTeacherAvailable: failed to get rules for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования, начинающиеся в тот же день
	day := scheduling.StartOfDay(req.At)
	bookings, err := uc.bookingRepo.ListOccupying(ctx, req.TeacherID, day, day.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("CheckTeacherAvailable: failed to get bookings for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Проверяем
	opts := scheduling.NewSlotOptions(policy, duration, 0, false, uc.blackoutSuppresses)
	result := scheduling.CheckAvailableAt(req.At, duration, rules, bookings, req.ExcludeBookingID, now, opts)

	uc.logger.Info("CheckTeacherAvailable: teacher=%d available=%t reason=%q", req.TeacherID, result.IsAvailable, result.Reason)

	return &Response{
		TeacherID:            req.TeacherID,
		At:                   req.At,
		DurationMinutes:      duration,
		IsAvailable:          result.IsAvailable,
		Reason:               result.Reason,
		ConflictingBookingID: result.BookingID,
	}, nil
}
