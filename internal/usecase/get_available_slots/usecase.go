package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	teacherRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/teacher"
	"github.com/m04kA/SMC-AvailabilityService/internal/scheduling"
)

// UseCase use case получения слотов преподавателя за период
type UseCase struct {
	ruleRepo           RuleRepository
	bookingRepo        BookingRepository
	teacherRepo        TeacherRepository
	metrics            Metrics
	timeProvider       TimeProvider
	logger             Logger
	blackoutSuppresses bool
}

// NewUseCase создает новый экземпляр use case.
// blackoutSuppresses включает закрытие слотов активными blackout-правилами.
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

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: teacher=%d, period=%s..%s",
		req.TeacherID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	duration, breakTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем политику преподавателя
	policy, err := uc.teacherRepo.GetPolicy(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, teacherRepo.ErrTeacherNotFound) {
			uc.logger.Warn("GetAvailableSlots: teacher id=%d not found", req.TeacherID)
			return nil, ErrTeacherNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get policy for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get teacher policy: %v", ErrInternal, err)
	}

	// 4. Получаем активные правила
	rules, err := uc.ruleRepo.ListActiveByTeacher(ctx, req.TeacherID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get rules for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования за период
	from := scheduling.StartOfDay(req.StartDate)
	to := scheduling.StartOfDay(req.EndDate).AddDate(0, 0, 1)
	bookings, err := uc.bookingRepo.ListOccupying(ctx, req.TeacherID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for teacher=%d: %v", req.TeacherID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	opts := scheduling.NewSlotOptions(policy, duration, breakTime, req.IncludeShortNotice, uc.blackoutSuppresses)
	slots, err := scheduling.GenerateSlots(from, scheduling.StartOfDay(req.EndDate), rules, bookings, now, opts)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	available := 0
	for _, slot := range slots {
		if slot.IsAvailable {
			available++
		}
	}
	uc.metrics.ObserveSlots(available, len(slots)-available)

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for teacher=%d",
		len(slots), available, req.TeacherID)

	return &Response{
		TeacherID:       req.TeacherID,
		StartDate:       from,
		EndDate:         scheduling.StartOfDay(req.EndDate),
		DurationMinutes: duration,
		BreakMinutes:    breakTime,
		Slots:           slots,
		AvailableCount:  available,
	}, nil
}
