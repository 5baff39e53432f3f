package database

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingMock(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := NewMigrator(db)
	m.interval = 50 * time.Millisecond
	return m, mock
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	m := NewMigrator(nil)

	ups, err := fs.Glob(m.source, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(m.source, "*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, 3)
	assert.Len(t, downs, len(ups))
}

func TestWait_ReadyImmediately(t *testing.T) {
	m, mock := pingMock(t)
	mock.ExpectPing()

	assert.NoError(t, m.Wait(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWait_SlowStartup(t *testing.T) {
	m, mock := pingMock(t)
	m.attempts = 4
	for i := 0; i < 3; i++ {
		mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	}
	mock.ExpectPing()

	start := time.Now()
	require.NoError(t, m.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 3*m.interval)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWait_GivesUp(t *testing.T) {
	m, mock := pingMock(t)
	m.attempts = 2
	refused := errors.New("connection refused")
	mock.ExpectPing().WillReturnError(refused)
	mock.ExpectPing().WillReturnError(refused)

	err := m.Wait(context.Background())

	require.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "not ready after 2 attempts")
}

func TestWait_StopsOnCancel(t *testing.T) {
	m, mock := pingMock(t)
	m.interval = time.Minute
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, m.Wait(ctx), context.DeadlineExceeded)
}

func TestUp_RequiresReachablePostgres(t *testing.T) {
	m, mock := pingMock(t)
	m.source = fstest.MapFS{"000001_init.up.sql": {Data: []byte("SELECT 1;")}}
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err := m.Up(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres driver")
}
