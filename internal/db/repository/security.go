package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SecurityRepo answers identity and service-model lookups against the
// metastore's read pool.
type SecurityRepo struct {
	db *sql.DB
}

func NewSecurityRepo(readDB *sql.DB) *SecurityRepo {
	return &SecurityRepo{db: readDB}
}

func (r *SecurityRepo) UserIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, r.db, `SELECT id FROM users WHERE name = ?`, name)
}

func (r *SecurityRepo) GroupIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, r.db, `SELECT id FROM groups WHERE name = ?`, name)
}

func (r *SecurityRepo) RoleIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, r.db, `SELECT id FROM roles WHERE name = ?`, name)
}

func (r *SecurityRepo) ServiceIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, r.db, `SELECT id FROM services WHERE name = ?`, name)
}

func (r *SecurityRepo) ZoneIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, r.db, `SELECT id FROM zones WHERE name = ?`, name)
}

// GroupsForUser returns the names of the groups the user belongs to. An
// unknown user yields an empty set, not an error.
func (r *SecurityRepo) GroupsForUser(ctx context.Context, userName string) (map[string]bool, error) {
	const query = `
		SELECT g.name
		FROM groups g
		JOIN user_groups ug ON ug.group_id = g.id
		JOIN users u ON u.id = ug.user_id
		WHERE u.name = ?`
	return r.nameSet(ctx, query, userName)
}

// RolesForUser returns the names of the roles assigned directly to the user.
func (r *SecurityRepo) RolesForUser(ctx context.Context, userName string) (map[string]bool, error) {
	const query = `
		SELECT rl.name
		FROM roles rl
		JOIN user_roles ur ON ur.role_id = rl.id
		JOIN users u ON u.id = ur.user_id
		WHERE u.name = ?`
	return r.nameSet(ctx, query, userName)
}

func (r *SecurityRepo) IsServiceAdmin(ctx context.Context, userName, serviceName string) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM service_admins sa
		JOIN services s ON s.id = sa.service_id
		JOIN users u ON u.id = sa.user_id
		WHERE u.name = ? AND s.name = ?`
	return r.exists(ctx, query, userName, serviceName)
}

func (r *SecurityRepo) IsZoneAdmin(ctx context.Context, userName, zoneName string) (bool, error) {
	const query = `
		SELECT COUNT(*)
		FROM zone_admins za
		JOIN zones z ON z.id = za.zone_id
		JOIN users u ON u.id = za.user_id
		WHERE u.name = ? AND z.name = ?`
	return r.exists(ctx, query, userName, zoneName)
}

// AccessTypes returns the access-type names the service supports.
func (r *SecurityRepo) AccessTypes(ctx context.Context, serviceName string) (map[string]bool, error) {
	const query = `
		SELECT sat.access_type
		FROM service_access_types sat
		JOIN services s ON s.id = sat.service_id
		WHERE s.name = ?`
	return r.nameSet(ctx, query, serviceName)
}

// MaskTypes returns the mask-type names the service supports.
func (r *SecurityRepo) MaskTypes(ctx context.Context, serviceName string) (map[string]bool, error) {
	const query = `
		SELECT smt.mask_type
		FROM service_mask_types smt
		JOIN services s ON s.id = smt.service_id
		WHERE s.name = ?`
	return r.nameSet(ctx, query, serviceName)
}

func (r *SecurityRepo) nameSet(ctx context.Context, query string, args ...interface{}) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query name set: %w", err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		set[name] = true
	}
	return set, rows.Err()
}

func (r *SecurityRepo) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
