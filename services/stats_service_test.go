package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk-backend/utils"
)

func TestStatsSummary(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStatsService(db)

	rows := sqlmock.NewRows([]string{
		"total_rooms", "available_rooms", "total_bookings",
		"confirmed_bookings", "pending_bookings",
	}).AddRow(5, 3, 10, 6, 4)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	stats, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalRooms)
	assert.Equal(t, int64(3), stats.AvailableRooms)
	assert.Equal(t, int64(10), stats.TotalBookings)
	assert.Equal(t, int64(6), stats.ConfirmedBookings)
	assert.Equal(t, int64(4), stats.PendingBookings)
}

func TestStatsSummaryMissingTableErrorSurfaces(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStatsService(db)

	mock.ExpectQuery("SELECT").
		WillReturnError(&mysql.MySQLError{Number: 1146, Message: "Table 'hotel_db.rooms' doesn't exist"})

	stats, err := svc.Summary()
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.True(t, utils.IsNoSuchTable(err))
}
