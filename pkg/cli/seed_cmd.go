package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sharegov/internal/app"
)

// seedFile is the YAML description of an identity model to load into the
// metastore. All inserts are idempotent, so a seed file can be re-applied.
type seedFile struct {
	Users    []seedUser    `yaml:"users"`
	Groups   []string      `yaml:"groups"`
	Roles    []string      `yaml:"roles"`
	Services []seedService `yaml:"services"`
	Zones    []seedZone    `yaml:"zones"`
}

type seedUser struct {
	Name   string   `yaml:"name"`
	Admin  bool     `yaml:"admin"`
	Groups []string `yaml:"groups"`
	Roles  []string `yaml:"roles"`
}

type seedService struct {
	Name        string   `yaml:"name"`
	Admins      []string `yaml:"admins"`
	AccessTypes []string `yaml:"accessTypes"`
	MaskTypes   []string `yaml:"maskTypes"`
}

type seedZone struct {
	Name   string   `yaml:"name"`
	Admins []string `yaml:"admins"`
}

func newSeedCmd(dbPath *string) *cobra.Command {
	var (
		file string
		demo bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load an identity model into the metastore",
		Long:  "Load users, groups, roles, services, and zones from a YAML file, or seed the built-in demo model.",
		Example: `  # Apply a seed file
  gdsctl seed --file identity.yaml

  # Seed the demo model used by the dev server
  gdsctl seed --demo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" && !demo {
				return fmt.Errorf("either --file or --demo is required")
			}

			db, err := openMetastore(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			ctx := cmd.Context()

			if demo {
				log := slog.New(slog.NewTextHandler(os.Stderr, nil))
				if err := app.SeedDemo(ctx, db, log); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "demo model seeded")
				return nil
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			var sf seedFile
			if err := yaml.Unmarshal(raw, &sf); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}
			if err := applySeed(ctx, db, &sf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed applied: %d users, %d services, %d zones\n",
				len(sf.Users), len(sf.Services), len(sf.Zones))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML seed file to apply")
	cmd.Flags().BoolVar(&demo, "demo", false, "seed the built-in demo model")
	return cmd
}

// applySeed loads the identity model. Groups and roles referenced by users
// are created implicitly.
func applySeed(ctx context.Context, db *sql.DB, sf *seedFile) error {
	exec := func(query string, args ...interface{}) error {
		_, err := db.ExecContext(ctx, query, args...)
		return err
	}

	groups := append([]string{}, sf.Groups...)
	roles := append([]string{}, sf.Roles...)
	for _, u := range sf.Users {
		groups = append(groups, u.Groups...)
		roles = append(roles, u.Roles...)
	}
	for _, g := range groups {
		if err := exec(`INSERT OR IGNORE INTO groups (name) VALUES (?)`, g); err != nil {
			return fmt.Errorf("seed group %q: %w", g, err)
		}
	}
	for _, r := range roles {
		if err := exec(`INSERT OR IGNORE INTO roles (name) VALUES (?)`, r); err != nil {
			return fmt.Errorf("seed role %q: %w", r, err)
		}
	}

	for _, u := range sf.Users {
		isAdmin := 0
		if u.Admin {
			isAdmin = 1
		}
		if err := exec(`INSERT OR IGNORE INTO users (name, is_admin) VALUES (?, ?)`, u.Name, isAdmin); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Name, err)
		}
		for _, g := range u.Groups {
			err := exec(`INSERT OR IGNORE INTO user_groups
				SELECT u.id, g.id FROM users u, groups g WHERE u.name = ? AND g.name = ?`, u.Name, g)
			if err != nil {
				return fmt.Errorf("seed membership %s in %s: %w", u.Name, g, err)
			}
		}
		for _, r := range u.Roles {
			err := exec(`INSERT OR IGNORE INTO user_roles
				SELECT u.id, r.id FROM users u, roles r WHERE u.name = ? AND r.name = ?`, u.Name, r)
			if err != nil {
				return fmt.Errorf("seed role %s for %s: %w", r, u.Name, err)
			}
		}
	}

	for _, svc := range sf.Services {
		if err := exec(`INSERT OR IGNORE INTO services (name) VALUES (?)`, svc.Name); err != nil {
			return fmt.Errorf("seed service %q: %w", svc.Name, err)
		}
		for _, admin := range svc.Admins {
			err := exec(`INSERT OR IGNORE INTO service_admins
				SELECT s.id, u.id FROM services s, users u WHERE s.name = ? AND u.name = ?`, svc.Name, admin)
			if err != nil {
				return fmt.Errorf("seed service admin %s for %s: %w", admin, svc.Name, err)
			}
		}
		for _, at := range svc.AccessTypes {
			err := exec(`INSERT OR IGNORE INTO service_access_types
				SELECT id, ? FROM services WHERE name = ?`, at, svc.Name)
			if err != nil {
				return fmt.Errorf("seed access type %s for %s: %w", at, svc.Name, err)
			}
		}
		for _, mt := range svc.MaskTypes {
			err := exec(`INSERT OR IGNORE INTO service_mask_types
				SELECT id, ? FROM services WHERE name = ?`, mt, svc.Name)
			if err != nil {
				return fmt.Errorf("seed mask type %s for %s: %w", mt, svc.Name, err)
			}
		}
	}

	for _, z := range sf.Zones {
		if err := exec(`INSERT OR IGNORE INTO zones (name) VALUES (?)`, z.Name); err != nil {
			return fmt.Errorf("seed zone %q: %w", z.Name, err)
		}
		for _, admin := range z.Admins {
			err := exec(`INSERT OR IGNORE INTO zone_admins
				SELECT z.id, u.id FROM zones z, users u WHERE z.name = ? AND u.name = ?`, z.Name, admin)
			if err != nil {
				return fmt.Errorf("seed zone admin %s for %s: %w", admin, z.Name, err)
			}
		}
	}

	return nil
}
