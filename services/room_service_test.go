package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "capacity", "amenities", "available"}).
		AddRow(1, "Ocean View Suite", 299.0, 4, `["balcony","minibar"]`, true)
}

func TestRoomGetByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(emptyRows("id", "name"))

	room, err := svc.GetByID("99")
	assert.NoError(t, err)
	assert.Nil(t, room)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomGetByIDDecodesAmenities(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow())

	room, err := svc.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "1", room.ID)
	assert.Equal(t, []string{"balcony", "minibar"}, room.Amenities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDeleteTwice(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	deleted, err := svc.Delete("1")
	require.NoError(t, err)
	assert.True(t, deleted)

	// the second delete touches no rows
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `rooms`").
		WillReturnResult(sqlmockResult(0))
	mock.ExpectCommit()

	deleted, err = svc.Delete("1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomUpdateEmptyFieldsReturnsCurrentRow(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	// no UPDATE statement, just the refetch
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow())

	room, err := svc.Update("1", map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "Ocean View Suite", room.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreateDefaultsCapacity(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewRoomService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rooms`").
		WithArgs("Standard Double", nil, 129.0, 2, sqlmock.AnyArg(), nil, true).
		WillReturnResult(sqlmockResult(1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRow())

	_, err := svc.Create(CreateRoomInput{Name: "Standard Double", Price: 129, Available: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
