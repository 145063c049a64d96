package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return &GormStore{db: db}, mock
}

func TestGormStore_LoadAbsent(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "snapshots" WHERE key = \$1(.+)`).
		WithArgs("bank_ledger", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "data", "updated_at"}))

	_, ok, err := store.Load(context.Background(), "bank_ledger")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_LoadFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "snapshots" WHERE key = \$1(.+)`).
		WithArgs("bank_ledger", 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "data"}).
			AddRow("bank_ledger", []byte(`{"accounts":[]}`)))

	rec, ok, err := store.Load(context.Background(), "bank_ledger")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"accounts":[]}`, string(rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SaveUpsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "snapshots" (.+) ON CONFLICT (.+) DO UPDATE SET (.+)`).
		WithArgs("bank_ledger", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Save(context.Background(), "bank_ledger", []byte(`{"accounts":[]}`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
