package repository

import (
	"context"
	"database/sql"
	"errors"

	"sharegov/internal/domain"
)

const projectColumns = `id, name, description, admins, acl, terms_of_use, created_at, updated_at`

// ProjectRepo persists projects in the metastore.
type ProjectRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewProjectRepo(writeDB, readDB *sql.DB) *ProjectRepo {
	return &ProjectRepo{w: writeDB, r: readDB}
}

func (repo *ProjectRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	admins, err := encodeJSON(p.Admins)
	if err != nil {
		return nil, err
	}
	acl, err := encodeACL(p.ACL)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`INSERT INTO projects (name, description, admins, acl, terms_of_use) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Description, admins, acl, p.TermsOfUse)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *ProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *ProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	row := repo.r.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE name = ?`, name)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("project %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (repo *ProjectRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	admins, err := encodeJSON(p.Admins)
	if err != nil {
		return nil, err
	}
	acl, err := encodeACL(p.ACL)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`UPDATE projects
		 SET name = ?, description = ?, admins = ?, acl = ?, terms_of_use = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		p.Name, p.Description, admins, acl, p.TermsOfUse, p.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("project %d not found", p.ID)
	}
	return repo.getByID(ctx, repo.w, p.ID)
}

func (repo *ProjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.w.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("project %d not found", id)
	}
	return nil
}

func (repo *ProjectRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.Project, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("project %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p      domain.Project
		admins string
		acl    sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &admins, &acl,
		&p.TermsOfUse, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Admins, err = decodePrincipals(admins); err != nil {
		return nil, err
	}
	if p.ACL, err = decodeACL(acl); err != nil {
		return nil, err
	}
	return &p, nil
}
