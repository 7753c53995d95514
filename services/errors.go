package services

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies a service failure so the presentation layer can
// decide how to render it without inspecting error strings.
type Kind int

const (
	// KindValidation marks malformed input rejected before any
	// database call.
	KindValidation Kind = iota
	// KindDatabase marks a constraint, trigger or statement failure
	// reported by the database (e.g. insufficient stock, unknown id).
	KindDatabase
	// KindConnection marks an unavailable or lost session.
	KindConnection
)

// Error is the single failure type returned by every service
// operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind reports the kind of a service error. Unclassified errors
// count as database failures, the broadest category.
func ErrorKind(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindDatabase
}

func validationError(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// wrapDB classifies a database-layer error. Lost or refused sessions
// become connection failures; everything else keeps the database's
// own message for the user.
func wrapDB(op string, err error) *Error {
	kind := KindDatabase
	if isConnectionError(err) {
		kind = KindConnection
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidDB) {
		return true
	}
	msg := err.Error()
	for _, s := range []string{"connection refused", "connection reset", "broken pipe", "failed to connect"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
