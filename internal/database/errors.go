package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrConstraintViolation reports a foreign key rejection, e.g. deleting a
	// director that movies still reference.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrUniquenessViolation reports a duplicate primary key or unique value.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	ErrSchemaTooNew    = errors.New("database schema is newer than this build")
	ErrVariantMismatch = errors.New("database file belongs to another schema variant")
)

// StoreError carries a human-readable message for a classified SQLite failure.
// errors.Is matches it against its Kind sentinel as well as the driver error.
type StoreError struct {
	Kind    error
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify translates SQLite constraint failures into a *StoreError carrying
// the driver's message. Other errors are returned untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	var kind error
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		kind = ErrConstraintViolation
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		kind = ErrUniquenessViolation
	default:
		return err
	}
	return &StoreError{Kind: kind, Message: sqliteErr.Error(), Err: err}
}

// Describe replaces the message of a classified error of the given kind.
// Anything else is returned as is.
func Describe(err error, kind error, message string) error {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Kind == kind {
		return &StoreError{Kind: kind, Message: message, Err: storeErr.Err}
	}
	return err
}
