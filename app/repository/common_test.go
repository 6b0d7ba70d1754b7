package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeDB struct {
	execFn func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if f.execFn != nil {
		return f.execFn(ctx, query, args...)
	}
	return fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct {
	rowsAffected int64
	rowsErr      error
}

func (r fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not supported")
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.rowsErr
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error is not a unique violation")
	}
}

func TestJSONColumnNullLeavesDestination(t *testing.T) {
	dst := []string{"keep"}
	if err := jsonColumn(nil, &dst); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dst) != 1 || dst[0] != "keep" {
		t.Fatalf("expected destination untouched, got %v", dst)
	}
}

func TestJSONColumnUnmarshals(t *testing.T) {
	var dst []string
	if err := jsonColumn([]byte(`["a","b"]`), &dst); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dst) != 2 || dst[0] != "a" {
		t.Fatalf("unexpected result %v", dst)
	}
}

func TestNullableStringValue(t *testing.T) {
	if v := nullableStringValue(nil); v != nil {
		t.Fatalf("expected nil, got %v", v)
	}
	blank := "   "
	if v := nullableStringValue(&blank); v != nil {
		t.Fatalf("expected nil for blank, got %v", v)
	}
	s := " hello "
	if v := nullableStringValue(&s); v != "hello" {
		t.Fatalf("expected trimmed value, got %v", v)
	}
}
