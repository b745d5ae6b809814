package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingCredentials   = errors.New("All fields are required")
	ErrInvalidConditions    = errors.New("Please fill out all medical condition names.")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidMeasurement   = errors.New("weight and height must be positive numbers in a realistic range")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidSort          = errors.New("sort must be one of: date, type")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}

// pgErrorFields extracts the PostgreSQL diagnostics worth logging next to a
// failed statement. Non-Postgres errors yield empty fields.
func pgErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields["pg_code"] = pgErr.Code
		fields["pg_table"] = pgErr.TableName
		if pgErr.ConstraintName != "" {
			fields["pg_constraint"] = pgErr.ConstraintName
		}
		fields["duplicate_key"] = isDuplicateKeyError(err)
	}
	return fields
}
