package get_weekly_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	teacherRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/teacher"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRules []*domain.AvailabilityRule

func (f fakeRules) ListActiveByTeacher(context.Context, int64) ([]*domain.AvailabilityRule, error) {
	return f, nil
}

type fakeBookings struct {
	bookings []*domain.Booking
	from, to time.Time
}

func (f *fakeBookings) ListOccupying(_ context.Context, _ int64, from, to time.Time) ([]*domain.Booking, error) {
	f.from, f.to = from, to
	return f.bookings, nil
}

type fakeTeachers struct{ err error }

func (f fakeTeachers) GetPolicy(_ context.Context, teacherID int64) (*domain.TeacherPolicy, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.DefaultTeacherPolicy(teacherID), nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveSlots(int, int) {}

var (
	sunday = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	// среда предыдущей недели
	now = time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)
)

func newUseCase(bookings *fakeBookings, teachers fakeTeachers) *UseCase {
	rules := fakeRules{
		{ID: uuid.New(), TeacherID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", Kind: domain.KindRegular, IsActive: true},
		{ID: uuid.New(), TeacherID: 1, DayOfWeek: 5, StartTime: "10:00", EndTime: "11:30", Kind: domain.KindRegular, IsActive: true},
	}
	uc := NewUseCase(rules, bookings, teachers, nopMetrics{}, logger.NewNop(), false)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	bookings := &fakeBookings{bookings: []*domain.Booking{{
		ID: 8, TeacherID: 1, ScheduledAt: sunday.AddDate(0, 0, 1).Add(10 * time.Hour), DurationMinutes: 60, Status: domain.StatusPending,
	}}}
	uc := newUseCase(bookings, fakeTeachers{})

	resp, err := uc.Execute(context.Background(), &Request{TeacherID: 1, WeekStart: ptr.Ptr(sunday), Weeks: 2, IncludeBookings: true})

	require.NoError(t, err)
	require.Len(t, resp.Weeks, 2)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDuration)
	assert.Equal(t, sunday, bookings.from)
	assert.Equal(t, sunday.AddDate(0, 0, 14), bookings.to)

	first := resp.Weeks[0]
	assert.Equal(t, 4.5, first.TotalAvailableHours)
	assert.Equal(t, 1.0, first.TotalBookedHours)
	assert.Equal(t, 3, first.AvailableSlots)
	assert.Equal(t, 1, first.BookedSlots)
	assert.Len(t, first.Days[1].Slots, 3)

	second := resp.Weeks[1]
	assert.Equal(t, sunday.AddDate(0, 0, 7), second.WeekStart)
	assert.Equal(t, 0.0, second.TotalBookedHours)
	assert.Equal(t, 4, second.AvailableSlots)
}

func TestExecute_DefaultWeekStart(t *testing.T) {
	uc := newUseCase(&fakeBookings{}, fakeTeachers{})

	resp, err := uc.Execute(context.Background(), &Request{TeacherID: 1})

	require.NoError(t, err)
	require.Len(t, resp.Weeks, 1)
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), resp.Weeks[0].WeekStart)
	for _, day := range resp.Weeks[0].Days {
		assert.Empty(t, day.Slots)
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookings{}, fakeTeachers{})

	for _, req := range []*Request{
		{TeacherID: 0},
		{TeacherID: 1, Weeks: 13},
		{TeacherID: 1, Weeks: -1},
		{TeacherID: 1, SlotDuration: 200},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_TeacherNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookings{}, fakeTeachers{err: teacherRepo.ErrTeacherNotFound})

	_, err := uc.Execute(context.Background(), &Request{TeacherID: 1})

	assert.ErrorIs(t, err, ErrTeacherNotFound)
}
