package availability

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func ruleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "teacher_id", "day_of_week", "start_time", "end_time", "kind", "is_active", "created_at", "updated_at",
	})
}

func TestCreate_GeneratesID(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO availability_rules \(id,teacher_id,day_of_week,start_time,end_time,kind,is_active\) VALUES .* RETURNING created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), int64(42), 1, "09:00", "12:00", "regular", true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testNow, testNow))

	rule, err := repo.Create(context.Background(), &domain.AvailabilityRule{
		TeacherID: 42,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
		Kind:      domain.KindRegular,
		IsActive:  true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, testNow, rule.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(`INSERT INTO availability_rules`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.AvailabilityRule{TeacherID: 1, StartTime: "09:00", EndTime: "10:00", Kind: domain.KindRegular})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM availability_rules WHERE id = \$1 AND teacher_id = \$2$`).
		WithArgs(id, int64(42)).
		WillReturnRows(ruleRows().AddRow(id.String(), 42, 3, "14:00:00", "16:30:00", "blackout", false, testNow, testNow))

	rule, err := repo.GetByID(context.Background(), 42, id)

	require.NoError(t, err)
	assert.Equal(t, id, rule.ID)
	assert.Equal(t, 3, rule.DayOfWeek)
	assert.Equal(t, "14:00", rule.StartTime.String())
	assert.Equal(t, "16:30", rule.EndTime.String())
	assert.Equal(t, domain.KindBlackout, rule.Kind)
	assert.False(t, rule.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(`FROM availability_rules`).WillReturnRows(ruleRows())

	_, err := repo.GetByID(context.Background(), 42, uuid.New())

	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestList_Filters(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM availability_rules WHERE teacher_id = \$1 AND day_of_week = \$2 AND kind = \$3 AND is_active = \$4 ORDER BY day_of_week, start_time`).
		WithArgs(int64(7), 2, "regular", true).
		WillReturnRows(ruleRows().AddRow(id.String(), 7, 2, "09:00:00", "10:00:00", "regular", true, testNow, testNow))

	kind := domain.KindRegular
	rules, err := repo.List(context.Background(), domain.RuleFilter{
		TeacherID: 7,
		DayOfWeek: ptr.Ptr(2),
		Kind:      &kind,
		IsActive:  ptr.Ptr(true),
	})

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, id, rules[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(`FROM availability_rules WHERE teacher_id = \$1 ORDER BY`).
		WithArgs(int64(7)).
		WillReturnRows(ruleRows())

	rules, err := repo.List(context.Background(), domain.RuleFilter{TeacherID: 7})

	require.NoError(t, err)
	assert.NotNil(t, rules)
	assert.Empty(t, rules)
}

func TestListByTeacherDay_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM availability_rules WHERE day_of_week = \$1 AND teacher_id = \$2 ORDER BY start_time FOR UPDATE`).
		WithArgs(1, int64(42)).
		WillReturnRows(ruleRows())
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = repo.ListByTeacherDay(dbmetrics.WithTx(context.Background(), tx), 42, 1)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByTeacherDay_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`ORDER BY start_time$`).
		WithArgs(1, int64(42)).
		WillReturnRows(ruleRows())

	_, err := repo.ListByTeacherDay(context.Background(), 42, 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()
	later := testNow.Add(time.Hour)

	mock.ExpectQuery(`UPDATE availability_rules SET start_time = \$1, end_time = \$2, kind = \$3, is_active = \$4, updated_at = NOW\(\) WHERE id = \$5 AND teacher_id = \$6 RETURNING updated_at`).
		WithArgs("10:00", "11:00", "one_time", true, id, int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(later))

	rule, err := repo.Update(context.Background(), &domain.AvailabilityRule{
		ID:        id,
		TeacherID: 42,
		StartTime: "10:00",
		EndTime:   "11:00",
		Kind:      domain.KindOneTime,
		IsActive:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, later, rule.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(`UPDATE availability_rules`).WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	_, err := repo.Update(context.Background(), &domain.AvailabilityRule{ID: uuid.New(), TeacherID: 1, StartTime: "10:00", EndTime: "11:00", Kind: domain.KindRegular})

	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDelete(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM availability_rules WHERE id = \$1 AND teacher_id = \$2`).
		WithArgs(id, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 42, id))

	mock.ExpectExec(`DELETE FROM availability_rules`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 42, id), ErrRuleNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByTeacherDay(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM availability_rules WHERE day_of_week = \$1 AND teacher_id = \$2`).
		WithArgs(3, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteByTeacherDay(context.Background(), 42, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
