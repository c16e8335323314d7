package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SeedDemo populates the metastore with a demo identity model: a few users
// and groups, a hive service with a sales zone, and the access and mask
// types the service supports. Idempotent — does nothing when users already
// exist.
func SeedDemo(ctx context.Context, writeDB *sql.DB, log *slog.Logger) error {
	var count int
	if err := writeDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	stmts := []string{
		`INSERT INTO users (name, is_admin) VALUES ('admin_user', 1), ('data_owner', 0), ('analyst1', 0), ('analyst2', 0)`,
		`INSERT INTO groups (name) VALUES ('analysts'), ('data-owners')`,
		`INSERT INTO roles (name) VALUES ('data-steward')`,
		`INSERT INTO user_groups SELECT u.id, g.id FROM users u, groups g WHERE u.name IN ('analyst1', 'analyst2') AND g.name = 'analysts'`,
		`INSERT INTO user_groups SELECT u.id, g.id FROM users u, groups g WHERE u.name = 'data_owner' AND g.name = 'data-owners'`,
		`INSERT INTO user_roles SELECT u.id, r.id FROM users u, roles r WHERE u.name = 'data_owner' AND r.name = 'data-steward'`,
		`INSERT INTO services (name) VALUES ('hive')`,
		`INSERT INTO zones (name) VALUES ('sales')`,
		`INSERT INTO service_admins SELECT s.id, u.id FROM services s, users u WHERE s.name = 'hive' AND u.name = 'data_owner'`,
		`INSERT INTO zone_admins SELECT z.id, u.id FROM zones z, users u WHERE z.name = 'sales' AND u.name = 'data_owner'`,
		`INSERT INTO service_access_types SELECT id, 'select' FROM services WHERE name = 'hive'`,
		`INSERT INTO service_access_types SELECT id, 'update' FROM services WHERE name = 'hive'`,
		`INSERT INTO service_access_types SELECT id, 'create' FROM services WHERE name = 'hive'`,
		`INSERT INTO service_mask_types SELECT id, 'MASK' FROM services WHERE name = 'hive'`,
		`INSERT INTO service_mask_types SELECT id, 'MASK_NULL' FROM services WHERE name = 'hive'`,
		`INSERT INTO service_mask_types SELECT id, 'MASK_HASH' FROM services WHERE name = 'hive'`,
	}
	for _, stmt := range stmts {
		if _, err := writeDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	log.Info("seeded demo identity model", "users", 4, "services", 1)
	return nil
}
