package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"hoteldesk-backend/services"
)

func statsRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	sc := NewStatsController(services.NewStatsService(db))

	r := gin.New()
	r.GET("/api/stats", sc.Summary)
	return r, mock
}

func TestStatsSummaryBody(t *testing.T) {
	r, mock := statsRouter(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_rooms", "available_rooms", "total_bookings",
			"confirmed_bookings", "pending_bookings",
		}).AddRow(5, 3, 10, 6, 4))

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	expectStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, float64(5), body["totalRooms"])
	assert.Equal(t, float64(3), body["availableRooms"])
	assert.Equal(t, float64(10), body["totalBookings"])
	assert.Equal(t, float64(6), body["confirmedBookings"])
	assert.Equal(t, float64(4), body["pendingBookings"])
}

// Before the schema exists the dashboard still gets a 200 with zeros.
func TestStatsSummaryZeroFillOnMissingTables(t *testing.T) {
	r, mock := statsRouter(t)

	mock.ExpectQuery("SELECT").
		WillReturnError(&driver.MySQLError{Number: 1146, Message: "Table 'hotel_db.rooms' doesn't exist"})

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	expectStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	for _, key := range []string{
		"totalRooms", "availableRooms", "totalBookings",
		"confirmedBookings", "pendingBookings", "totalGuests", "totalHotels",
	} {
		assert.Equal(t, float64(0), body[key], key)
	}
}

func TestStatsSummaryOtherErrorsAre500(t *testing.T) {
	r, mock := statsRouter(t)

	mock.ExpectQuery("SELECT").
		WillReturnError(&driver.MySQLError{Number: 1045, Message: "Access denied"})

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	expectStatus(t, w, http.StatusInternalServerError)
}
