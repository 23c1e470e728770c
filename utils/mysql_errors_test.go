package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'email'"}
	dupKey := &mysql.MySQLError{Number: 1061, Message: "Duplicate key name 'idx_email'"}
	noTable := &mysql.MySQLError{Number: 1146, Message: "Table 'hotel_db.rooms' doesn't exist"}
	noRef := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}

	assert.True(t, IsDuplicateEntry(dup))
	assert.True(t, IsDuplicateKeyName(dupKey))
	assert.True(t, IsNoSuchTable(noTable))
	assert.True(t, IsMissingReference(noRef))

	assert.False(t, IsDuplicateEntry(noTable))
	assert.False(t, IsNoSuchTable(dup))
}

func TestErrorClassificationUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", &mysql.MySQLError{Number: 1062})
	assert.True(t, IsDuplicateEntry(wrapped))
}

func TestErrorClassificationIgnoresOtherErrors(t *testing.T) {
	plain := errors.New("connection refused")
	assert.False(t, IsDuplicateEntry(plain))
	assert.False(t, IsDuplicateKeyName(plain))
	assert.False(t, IsNoSuchTable(plain))
	assert.False(t, IsMissingReference(plain))
	assert.False(t, IsDuplicateEntry(nil))
}
