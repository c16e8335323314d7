package repository

import (
	"context"
	"database/sql"
	"errors"

	"sharegov/internal/domain"
)

const datasetColumns = `id, name, description, admins, acl, terms_of_use, created_at, updated_at`

// DatasetRepo persists datasets in the metastore.
type DatasetRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewDatasetRepo(writeDB, readDB *sql.DB) *DatasetRepo {
	return &DatasetRepo{w: writeDB, r: readDB}
}

func (repo *DatasetRepo) Create(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error) {
	admins, err := encodeJSON(ds.Admins)
	if err != nil {
		return nil, err
	}
	acl, err := encodeACL(ds.ACL)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`INSERT INTO datasets (name, description, admins, acl, terms_of_use) VALUES (?, ?, ?, ?, ?)`,
		ds.Name, ds.Description, admins, acl, ds.TermsOfUse)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *DatasetRepo) GetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *DatasetRepo) GetByName(ctx context.Context, name string) (*domain.Dataset, error) {
	row := repo.r.QueryRowContext(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE name = ?`, name)
	ds, err := scanDataset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("dataset %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func (repo *DatasetRepo) List(ctx context.Context) ([]domain.Dataset, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+datasetColumns+` FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Dataset
	for rows.Next() {
		ds, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ds)
	}
	return out, rows.Err()
}

func (repo *DatasetRepo) Update(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error) {
	admins, err := encodeJSON(ds.Admins)
	if err != nil {
		return nil, err
	}
	acl, err := encodeACL(ds.ACL)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`UPDATE datasets
		 SET name = ?, description = ?, admins = ?, acl = ?, terms_of_use = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		ds.Name, ds.Description, admins, acl, ds.TermsOfUse, ds.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("dataset %d not found", ds.ID)
	}
	return repo.getByID(ctx, repo.w, ds.ID)
}

func (repo *DatasetRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.w.ExecContext(ctx, `DELETE FROM datasets WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("dataset %d not found", id)
	}
	return nil
}

func (repo *DatasetRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.Dataset, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+datasetColumns+` FROM datasets WHERE id = ?`, id)
	ds, err := scanDataset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("dataset %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func scanDataset(row rowScanner) (*domain.Dataset, error) {
	var (
		ds     domain.Dataset
		admins string
		acl    sql.NullString
	)
	err := row.Scan(&ds.ID, &ds.Name, &ds.Description, &admins, &acl,
		&ds.TermsOfUse, &ds.CreatedAt, &ds.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if ds.Admins, err = decodePrincipals(admins); err != nil {
		return nil, err
	}
	if ds.ACL, err = decodeACL(acl); err != nil {
		return nil, err
	}
	return &ds, nil
}
