package teacher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository читает настройки расписания из профиля преподавателя.
// Профили принадлежат сервису аккаунтов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPolicy возвращает политику преподавателя.
// Незаданные (NULL) значения заменяются значениями по умолчанию.
func (r *Repository) GetPolicy(ctx context.Context, teacherID int64) (*domain.TeacherPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"advance_notice_hours",
		"max_advance_booking_hours",
		"timezone",
	).
		From("teachers").
		Where(squirrel.Eq{"id": teacherID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - build select query: %v", ErrBuildQuery, err)
	}

	var (
		id            int64
		advanceNotice sql.NullInt32
		maxAdvance    sql.NullInt32
		timezone      sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &advanceNotice, &maxAdvance, &timezone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPolicy - scan teacher: %v", ErrScanRow, err)
	}

	policy := domain.DefaultTeacherPolicy(id)
	if advanceNotice.Valid {
		policy.AdvanceNoticeHours = int(advanceNotice.Int32)
	}
	if maxAdvance.Valid {
		policy.MaxAdvanceBookingHours = int(maxAdvance.Int32)
	}
	if timezone.Valid {
		policy.Timezone = timezone.String
	}

	return policy, nil
}

// Exists проверяет наличие профиля преподавателя
func (r *Repository) Exists(ctx context.Context, teacherID int64) (bool, error) {
	_, err := r.GetPolicy(ctx, teacherID)
	if errors.Is(err, ErrTeacherNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
