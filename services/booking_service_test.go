package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hoteldesk-backend/models"
)

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &parsed
}

func TestBookingResponseDeriveDatesFromLegacyPair(t *testing.T) {
	b := models.Booking{
		ID:       7,
		RoomID:   2,
		CheckIn:  datePtr(t, "2025-02-15"),
		CheckOut: datePtr(t, "2025-02-18"),
		Status:   "confirmed",
	}

	resp := bookingToResponse(&b)

	assert.Equal(t, "2025-02-15", resp.CheckIn)
	assert.Equal(t, "2025-02-18", resp.CheckOut)
	assert.Equal(t, "2025-02-15", resp.ArrivalDate)
	assert.Equal(t, "2025-02-18", resp.DepartureDate)
}

func TestBookingResponseDeriveDatesFromCurrentPair(t *testing.T) {
	b := models.Booking{
		ID:            8,
		RoomID:        1,
		ArrivalDate:   datePtr(t, "2025-03-01"),
		DepartureDate: datePtr(t, "2025-03-04"),
		Status:        "pending",
	}

	resp := bookingToResponse(&b)

	assert.Equal(t, "2025-03-01", resp.CheckIn)
	assert.Equal(t, "2025-03-04", resp.CheckOut)
	assert.Equal(t, "2025-03-01", resp.ArrivalDate)
	assert.Equal(t, "2025-03-04", resp.DepartureDate)
}

func TestBookingResponseIDsAreStrings(t *testing.T) {
	b := models.Booking{ID: 12, RoomID: 3, Status: "pending"}
	resp := bookingToResponse(&b)
	assert.Equal(t, "12", resp.ID)
	assert.Equal(t, "3", resp.RoomID)
}

func TestNewReferenceCode(t *testing.T) {
	code := newReferenceCode()
	assert.True(t, strings.HasPrefix(code, "BK-"), "got %q", code)
	assert.Len(t, code, 11)
	assert.Equal(t, strings.ToUpper(code), code)

	// two codes in a row should not collide
	assert.NotEqual(t, code, newReferenceCode())
}

func TestBookingUpdateSyncsDatePairs(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewBookingService(db)

	mock.ExpectBegin()
	// arrival_date alone must also land in check_in
	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRow())
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(emptyRows("id"))

	resp, err := svc.Update("5", map[string]interface{}{"arrival_date": "2025-04-01"})
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateNoRecognizedFieldsIsNoOp(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewBookingService(db)

	// no UPDATE expected, only the refetch
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRow())
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(emptyRows("id"))

	resp, err := svc.Update("5", map[string]interface{}{"bogus": "value"})
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
