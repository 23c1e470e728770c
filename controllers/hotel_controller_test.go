package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hoteldesk-backend/services"
)

func hotelRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	hc := NewHotelController(services.NewHotelService(db))

	r := gin.New()
	r.POST("/api/hotels", hc.Create)
	r.PUT("/api/hotels/:id", hc.Update)
	return r, mock
}

func TestCreateHotelRequiresCodeAndName(t *testing.T) {
	r, _ := hotelRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/hotels", map[string]interface{}{
		"hotelName": "Seaside",
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestCreateHotelDuplicateCodeConflicts(t *testing.T) {
	r, mock := hotelRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hotels`").
		WillReturnError(&mysqlDuplicateEntry)
	mock.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/api/hotels", map[string]interface{}{
		"hotelCode": "HTL-001",
		"hotelName": "Seaside",
	})
	expectStatus(t, w, http.StatusConflict)
	assert.Equal(t, "A hotel with this code already exists.", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// camelCase body keys must land in the snake_case columns.
func TestUpdateHotelRemapsKeys(t *testing.T) {
	r, mock := hotelRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `hotels` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_code", "hotel_name"}).
			AddRow(1, "HTL-001", "Seaside Renamed"))

	w := doJSON(t, r, http.MethodPut, "/api/hotels/1", map[string]interface{}{
		"hotelName": "Seaside Renamed",
	})
	expectStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, "Seaside Renamed", body["hotelName"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
