// Package repository implements SQLite-backed persistence for the sharing
// metastore and the read-only data provider the validator consumes.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"sharegov/internal/domain"
)

// mapDBError converts driver errors to domain errors.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound("record not found")
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return domain.ErrConflict("constraint violation: %v", err)
	}
	return err
}

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}

func decodePrincipals(s string) ([]domain.Principal, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var principals []domain.Principal
	if err := json.Unmarshal([]byte(s), &principals); err != nil {
		return nil, fmt.Errorf("decode principals: %w", err)
	}
	return principals, nil
}

func encodeACL(acl *domain.ACL) (sql.NullString, error) {
	if acl == nil {
		return sql.NullString{}, nil
	}
	s, err := encodeJSON(acl)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

func decodeACL(ns sql.NullString) (*domain.ACL, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	var acl domain.ACL
	if err := json.Unmarshal([]byte(ns.String), &acl); err != nil {
		return nil, fmt.Errorf("decode acl: %w", err)
	}
	return &acl, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// idByName runs a single-column name -> id lookup, reporting absence
// through ok rather than an error.
func idByName(ctx context.Context, db *sql.DB, query, name string) (int64, bool, error) {
	var id int64
	err := db.QueryRowContext(ctx, query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
