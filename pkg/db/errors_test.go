package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolationPostgres(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !IsUniqueViolation(fmt.Errorf("create user: %w", pgErr)) {
		t.Fatal("expected SQLSTATE 23505 to be detected through the chain")
	}

	otherErr := &pgconn.PgError{Code: "23503"}
	if IsUniqueViolation(otherErr) {
		t.Fatal("foreign key violation should not count as unique violation")
	}
}

func TestIsUniqueViolationSQLite(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: users.email")
	if !IsUniqueViolation(err) {
		t.Fatal("expected sqlite unique message to be detected")
	}
}

func TestIsUniqueViolationNil(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatal("nil is not a violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("unrelated error is not a violation")
	}
}
