package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository читает бронирования занятий. Таблица принадлежит сервису
// бронирований, здесь она только читается.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOccupying возвращает pending/confirmed бронирования преподавателя,
// начинающиеся в полуинтервале [from, to), по возрастанию времени начала
func (r *Repository) ListOccupying(ctx context.Context, teacherID int64, from, to time.Time) ([]*domain.Booking, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: ListOccupying - %s before %s", ErrInvalidRange, to, from)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, 0, len(domain.OccupyingStatuses))
	for _, status := range domain.OccupyingStatuses {
		statuses = append(statuses, string(status))
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"teacher_id",
		"scheduled_at",
		"duration_minutes",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Where(squirrel.GtOrEq{"scheduled_at": from}).
		Where(squirrel.Lt{"scheduled_at": to}).
		Where("status = ANY(?)", pq.Array(statuses)).
		OrderBy("scheduled_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.TeacherID,
			&booking.ScheduledAt,
			&booking.DurationMinutes,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOccupying - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupying - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
