package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFindByEmailNormalizes(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewUserService(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
		AddRow(1, "John", "john@example.com", "hash")
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WithArgs("john@example.com", 1).
		WillReturnRows(rows)

	user, err := svc.FindByEmail("  John@Example.COM ")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "john@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmailMissingIsNil(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(emptyRows("id"))

	user, err := svc.FindByEmail("nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUpdateZeroRowsIsNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewUserService(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmockResult(0))
	mock.ExpectCommit()

	user, err := svc.Update("99", map[string]interface{}{"name": "New Name"})
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
