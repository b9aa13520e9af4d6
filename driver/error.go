package driver

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DRIVER_ERROR = "driver"
	SQLITE_ERROR = "sqlite"
)

type Error struct {
	Source  string
	Message string
	Details string
	Inner   error
}

func (e Error) Error() string {
	if e.Inner != nil {
		return e.Inner.Error()
	}

	if e.Details == "" {
		return fmt.Sprintf("%s - %s", e.Source, e.Message)
	}

	return fmt.Sprintf("%s - %s\n%s", e.Source, e.Message, e.Details)
}

func (e Error) Unwrap() error {
	return e.Inner
}

func driverError(message string) Error {
	return detailedDriverError(message, "")
}

func detailedDriverError(message string, details string) Error {
	return Error{
		Source:  DRIVER_ERROR,
		Message: message,
		Details: details,
	}
}

func sqliteError(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return Error{
		Source: SQLITE_ERROR,
		Inner:  err,
	}
}

// IsReadOnly reports whether err is SQLite refusing a write because the
// database (or the connection to it) is read-only.
func IsReadOnly(err error) bool {
	var e *sqlite.Error
	if !errors.As(err, &e) {
		return false
	}
	// extended result codes are enabled, the primary code is the low byte
	return e.Code()&0xff == sqlite3.SQLITE_READONLY
}
