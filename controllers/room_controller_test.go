package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hoteldesk-backend/services"
)

func roomRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	rc := NewRoomController(services.NewRoomService(db))

	r := gin.New()
	r.GET("/api/rooms", rc.List)
	r.GET("/api/rooms/:id", rc.GetByID)
	r.POST("/api/rooms", rc.Create)
	r.DELETE("/api/rooms/:id", rc.Delete)
	return r, mock
}

func TestListRoomsAlwaysArray(t *testing.T) {
	r, mock := roomRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := doJSON(t, r, http.MethodGet, "/api/rooms", nil)
	expectStatus(t, w, http.StatusOK)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetRoomNotFound(t *testing.T) {
	r, mock := roomRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodGet, "/api/rooms/42", nil)
	expectStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Room not found.", decodeBody(t, w)["error"])
}

func TestCreateRoomRequiresName(t *testing.T) {
	r, _ := roomRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", map[string]interface{}{
		"price": 100,
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestDeleteRoomNotFound(t *testing.T) {
	r, mock := roomRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodDelete, "/api/rooms/42", nil)
	expectStatus(t, w, http.StatusNotFound)
}
