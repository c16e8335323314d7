package repository

import (
	"context"
	"database/sql"

	"sharegov/internal/domain"
)

// AuditRepo records mutating operations in the audit log.
type AuditRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewAuditRepo(writeDB, readDB *sql.DB) *AuditRepo {
	return &AuditRepo{w: writeDB, r: readDB}
}

func (repo *AuditRepo) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := repo.w.ExecContext(ctx,
		`INSERT INTO audit_log (id, principal_name, action, object_type, object_name, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.PrincipalName, entry.Action, entry.ObjectType, entry.ObjectName, entry.Status)
	return mapDBError(err)
}

func (repo *AuditRepo) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := repo.r.QueryContext(ctx,
		`SELECT id, principal_name, action, object_type, object_name, status, created_at
		 FROM audit_log ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		err := rows.Scan(&e.ID, &e.PrincipalName, &e.Action, &e.ObjectType,
			&e.ObjectName, &e.Status, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
