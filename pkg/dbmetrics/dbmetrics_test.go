package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func TestDB_ExecRecordsMetrics(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	db := Wrap(sqlDB, m)

	mock.ExpectExec("DELETE FROM availability_rules").WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = db.ExecContext(context.Background(), "DELETE FROM availability_rules WHERE id = $1", "x")
	require.NoError(t, err)

	mock.ExpectExec("UPDATE availability_rules").WillReturnError(assert.AnError)
	_, err = db.ExecContext(context.Background(), "UPDATE availability_rules SET is_active = false")
	require.Error(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration.WithLabelValues("delete").(prometheus.Histogram)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("update")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM x"))
	assert.Equal(t, "unknown", operation(""))
}
