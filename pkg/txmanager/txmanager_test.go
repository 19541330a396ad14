package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewTransactionManager(dbmetrics.Wrap(sqlDB, nil)), mock
}

func TestDoSerializable_Commit(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	var inTx bool
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		inTx = dbmetrics.IsInTransaction(ctx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, inTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	errBoom := errors.New("boom")
	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFails(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := mgr.DoReadOnly(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrTransaction)
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	mgr, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
