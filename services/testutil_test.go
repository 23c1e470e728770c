package services

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func sqlmockResult(rows int64) driver.Result {
	return sqlmock.NewResult(1, rows)
}

func emptyRows(columns ...string) *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func bookingRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_id", "guests", "num_adults", "num_children", "status"}).
		AddRow(5, 3, 2, 2, 0, "pending")
}
