package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const rulesTable = "availability_rules"

var ruleColumns = []string{
	"id",
	"teacher_id",
	"day_of_week",
	"start_time",
	"end_time",
	"kind",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил доступности преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет правило. Если ID не задан, генерируется новый.
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(rulesTable).
		Columns(
			"id",
			"teacher_id",
			"day_of_week",
			"start_time",
			"end_time",
			"kind",
			"is_active",
		).
		Values(
			rule.ID,
			rule.TeacherID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.Kind,
			rule.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.CreatedAt, &rule.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// GetByID получает правило преподавателя по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, teacherID int64, id uuid.UUID) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From(rulesTable).
		Where(squirrel.Eq{"id": id, "teacher_id": teacherID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// List возвращает правила преподавателя с опциональными фильтрами,
// упорядоченные по дню недели и времени начала
func (r *Repository) List(ctx context.Context, filter domain.RuleFilter) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From(rulesTable).
		Where(squirrel.Eq{"teacher_id": filter.TeacherID}).
		OrderBy("day_of_week", "start_time")

	if filter.DayOfWeek != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": *filter.DayOfWeek})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.IsActive != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// ListByTeacherDay возвращает все правила преподавателя на день недели.
// Внутри транзакции строки блокируются, чтобы параллельная запись
// не прошла мимо проверки конфликтов.
func (r *Repository) ListByTeacherDay(ctx context.Context, teacherID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From(rulesTable).
		Where(squirrel.Eq{"teacher_id": teacherID, "day_of_week": dayOfWeek}).
		OrderBy("start_time")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTeacherDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTeacherDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// ListActiveByTeacher возвращает активные правила преподавателя всех видов
func (r *Repository) ListActiveByTeacher(ctx context.Context, teacherID int64) ([]*domain.AvailabilityRule, error) {
	active := true
	return r.List(ctx, domain.RuleFilter{TeacherID: teacherID, IsActive: &active})
}

// Update сохраняет время, вид и активность правила
func (r *Repository) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(rulesTable).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("kind", rule.Kind).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID, "teacher_id": rule.TeacherID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// Delete удаляет правило преподавателя
func (r *Repository) Delete(ctx context.Context, teacherID int64, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(rulesTable).
		Where(squirrel.Eq{"id": id, "teacher_id": teacherID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// DeleteByTeacherDay удаляет все правила преподавателя на день недели,
// возвращает количество удалённых строк
func (r *Repository) DeleteByTeacherDay(ctx context.Context, teacherID int64, dayOfWeek int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(rulesTable).
		Where(squirrel.Eq{"teacher_id": teacherID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTeacherDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTeacherDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByTeacherDay - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	err := row.Scan(
		&rule.ID,
		&rule.TeacherID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.Kind,
		&rule.IsActive,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func scanRules(rows *sql.Rows) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
