package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the schema is expected to raise.
const (
	ErrNumDuplicateEntry  = 1062
	ErrNumRowIsReferenced = 1451
	ErrNumNoReferencedRow = 1452
)

// IsDuplicateEntry reports whether err is a unique-key violation, e.g. an
// already-used category slug.
func IsDuplicateEntry(err error) bool {
	return hasErrNum(err, ErrNumDuplicateEntry)
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure: deleting a still-referenced parent row (1451) or inserting a child
// row whose parent does not exist (1452).
func IsForeignKeyViolation(err error) bool {
	return hasErrNum(err, ErrNumRowIsReferenced) || hasErrNum(err, ErrNumNoReferencedRow)
}

func hasErrNum(err error, num uint16) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == num
	}
	return false
}
