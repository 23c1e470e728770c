package utils

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the bootstrap and handlers care about.
const (
	mysqlErrDupKeyName  = 1061 // duplicate index name
	mysqlErrDupEntry    = 1062 // duplicate entry for unique key
	mysqlErrNoSuchTable = 1146
	mysqlErrNoRefRow    = 1452 // FK target row missing
)

func mysqlErrNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// IsDuplicateEntry reports a unique-key violation (email, hotel code, role
// name and friends) so handlers can answer 409 instead of 500.
func IsDuplicateEntry(err error) bool {
	return mysqlErrNumber(err) == mysqlErrDupEntry
}

// IsDuplicateKeyName reports a "duplicate index" class error, safe to
// swallow when re-running schema DDL.
func IsDuplicateKeyName(err error) bool {
	return mysqlErrNumber(err) == mysqlErrDupKeyName
}

// IsNoSuchTable reports MySQL error 1146, raised when a probed or queried
// table has not been created yet.
func IsNoSuchTable(err error) bool {
	return mysqlErrNumber(err) == mysqlErrNoSuchTable
}

// IsMissingReference reports a failed FK check on insert. Seeding tolerates
// these because seed order can race with a partially-seeded database.
func IsMissingReference(err error) bool {
	return mysqlErrNumber(err) == mysqlErrNoRefRow
}
