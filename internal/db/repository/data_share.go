package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sharegov/internal/domain"
)

const dataShareColumns = `id, name, description, service, zone, admins, default_access_types, default_masks, created_at, updated_at`

// DataShareRepo persists data shares in the metastore.
type DataShareRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewDataShareRepo(writeDB, readDB *sql.DB) *DataShareRepo {
	return &DataShareRepo{w: writeDB, r: readDB}
}

func (repo *DataShareRepo) Create(ctx context.Context, sh *domain.DataShare) (*domain.DataShare, error) {
	admins, accessTypes, masks, err := encodeDataShareFields(sh)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`INSERT INTO data_shares (name, description, service, zone, admins, default_access_types, default_masks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sh.Name, sh.Description, sh.Service, sh.Zone, admins, accessTypes, masks)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *DataShareRepo) GetByID(ctx context.Context, id int64) (*domain.DataShare, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *DataShareRepo) GetByName(ctx context.Context, name string) (*domain.DataShare, error) {
	row := repo.r.QueryRowContext(ctx,
		`SELECT `+dataShareColumns+` FROM data_shares WHERE name = ?`, name)
	sh, err := scanDataShare(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("data share %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func (repo *DataShareRepo) List(ctx context.Context) ([]domain.DataShare, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+dataShareColumns+` FROM data_shares ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DataShare
	for rows.Next() {
		sh, err := scanDataShare(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sh)
	}
	return out, rows.Err()
}

func (repo *DataShareRepo) Update(ctx context.Context, sh *domain.DataShare) (*domain.DataShare, error) {
	admins, accessTypes, masks, err := encodeDataShareFields(sh)
	if err != nil {
		return nil, err
	}

	res, err := repo.w.ExecContext(ctx,
		`UPDATE data_shares
		 SET name = ?, description = ?, service = ?, zone = ?, admins = ?,
		     default_access_types = ?, default_masks = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		sh.Name, sh.Description, sh.Service, sh.Zone, admins, accessTypes, masks, sh.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("data share %d not found", sh.ID)
	}
	return repo.getByID(ctx, repo.w, sh.ID)
}

func (repo *DataShareRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.w.ExecContext(ctx, `DELETE FROM data_shares WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("data share %d not found", id)
	}
	return nil
}

func (repo *DataShareRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.DataShare, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+dataShareColumns+` FROM data_shares WHERE id = ?`, id)
	sh, err := scanDataShare(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("data share %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func encodeDataShareFields(sh *domain.DataShare) (admins, accessTypes, masks string, err error) {
	if admins, err = encodeJSON(sh.Admins); err != nil {
		return "", "", "", err
	}
	if accessTypes, err = encodeJSON(sh.DefaultAccessTypes); err != nil {
		return "", "", "", err
	}
	if masks, err = encodeJSON(sh.DefaultMasks); err != nil {
		return "", "", "", err
	}
	return admins, accessTypes, masks, nil
}

func scanDataShare(row rowScanner) (*domain.DataShare, error) {
	var (
		sh          domain.DataShare
		admins      string
		accessTypes string
		masks       string
	)
	err := row.Scan(&sh.ID, &sh.Name, &sh.Description, &sh.Service, &sh.Zone,
		&admins, &accessTypes, &masks, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if sh.Admins, err = decodePrincipals(admins); err != nil {
		return nil, err
	}
	if accessTypes != "" && accessTypes != "[]" && accessTypes != "null" {
		if err := json.Unmarshal([]byte(accessTypes), &sh.DefaultAccessTypes); err != nil {
			return nil, fmt.Errorf("decode default access types: %w", err)
		}
	}
	if masks != "" && masks != "{}" && masks != "null" {
		if err := json.Unmarshal([]byte(masks), &sh.DefaultMasks); err != nil {
			return nil, fmt.Errorf("decode default masks: %w", err)
		}
	}
	return &sh, nil
}
