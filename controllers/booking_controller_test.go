package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hoteldesk-backend/services"
)

func bookingRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	bc := NewBookingController(services.NewBookingService(db))

	r := gin.New()
	r.GET("/api/bookings/:id", bc.GetByID)
	r.POST("/api/bookings", bc.Create)
	r.PATCH("/api/bookings/:id", bc.UpdateStatus)
	r.DELETE("/api/bookings/:id", bc.Delete)
	return r, mock
}

func TestCreateBookingRequiresRoom(t *testing.T) {
	r, _ := bookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"guestName": "John Doe",
		"checkIn":   "2025-02-15",
		"checkOut":  "2025-02-18",
	})
	expectStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Room id is required.", decodeBody(t, w)["error"])
}

func TestCreateBookingRequiresGuestIdentity(t *testing.T) {
	r, _ := bookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId":   1,
		"checkIn":  "2025-02-15",
		"checkOut": "2025-02-18",
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestCreateBookingRequiresDates(t *testing.T) {
	r, _ := bookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId":    1,
		"guestName": "John Doe",
	})
	expectStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Arrival and departure dates are required.", decodeBody(t, w)["error"])
}

// A date that is present but does not parse must be rejected instead of
// landing in the row as NULL.
func TestCreateBookingRejectsUnparseableDates(t *testing.T) {
	r, _ := bookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId":    1,
		"guestName": "John Doe",
		"checkIn":   "soon",
		"checkOut":  "2025-02-18",
	})
	expectStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Invalid arrival or departure date.", decodeBody(t, w)["error"])
}

func TestCreateBookingAcceptsLegacyDateNames(t *testing.T) {
	r, mock := bookingRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "guests", "num_adults", "status"}).
			AddRow(9, 1, 2, 2, "pending"))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]interface{}{
		"roomId":    1,
		"guestName": "John Doe",
		"checkIn":   "2025-02-15",
		"checkOut":  "2025-02-18",
		"guests":    2,
	})
	expectStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "9", body["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingNotFound(t *testing.T) {
	r, mock := bookingRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodGet, "/api/bookings/99", nil)
	expectStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "Booking not found.", decodeBody(t, w)["error"])
}

func TestPatchBookingRequiresStatus(t *testing.T) {
	r, _ := bookingRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/1", map[string]interface{}{})
	expectStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "Status is required.", decodeBody(t, w)["error"])
}

func TestDeleteBookingNotFound(t *testing.T) {
	r, mock := bookingRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/99", nil)
	expectStatus(t, w, http.StatusNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookingNoContent(t *testing.T) {
	r, mock := bookingRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/1", nil)
	expectStatus(t, w, http.StatusNoContent)
	assert.Empty(t, w.Body.String())
}
