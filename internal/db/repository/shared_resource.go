package repository

import (
	"context"
	"database/sql"
	"errors"

	"sharegov/internal/domain"
)

const sharedResourceColumns = `id, data_share_id, name, description, created_at, updated_at`

// SharedResourceRepo persists shared resources in the metastore.
type SharedResourceRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewSharedResourceRepo(writeDB, readDB *sql.DB) *SharedResourceRepo {
	return &SharedResourceRepo{w: writeDB, r: readDB}
}

func (repo *SharedResourceRepo) Create(ctx context.Context, res *domain.SharedResource) (*domain.SharedResource, error) {
	result, err := repo.w.ExecContext(ctx,
		`INSERT INTO shared_resources (data_share_id, name, description) VALUES (?, ?, ?)`,
		res.DataShareID, res.Name, res.Description)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *SharedResourceRepo) GetByID(ctx context.Context, id int64) (*domain.SharedResource, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *SharedResourceRepo) ListForDataShare(ctx context.Context, dataShareID int64) ([]domain.SharedResource, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+sharedResourceColumns+` FROM shared_resources WHERE data_share_id = ? ORDER BY name`,
		dataShareID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SharedResource
	for rows.Next() {
		var res domain.SharedResource
		err := rows.Scan(&res.ID, &res.DataShareID, &res.Name, &res.Description,
			&res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (repo *SharedResourceRepo) Update(ctx context.Context, res *domain.SharedResource) (*domain.SharedResource, error) {
	result, err := repo.w.ExecContext(ctx,
		`UPDATE shared_resources
		 SET data_share_id = ?, name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		res.DataShareID, res.Name, res.Description, res.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("shared resource %d not found", res.ID)
	}
	return repo.getByID(ctx, repo.w, res.ID)
}

func (repo *SharedResourceRepo) Delete(ctx context.Context, id int64) error {
	result, err := repo.w.ExecContext(ctx, `DELETE FROM shared_resources WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("shared resource %d not found", id)
	}
	return nil
}

// IDByName looks up a shared resource by name within one data share.
func (repo *SharedResourceRepo) IDByName(ctx context.Context, dataShareID int64, name string) (int64, bool, error) {
	var id int64
	err := repo.r.QueryRowContext(ctx,
		`SELECT id FROM shared_resources WHERE data_share_id = ? AND name = ?`,
		dataShareID, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (repo *SharedResourceRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.SharedResource, error) {
	var res domain.SharedResource
	err := db.QueryRowContext(ctx,
		`SELECT `+sharedResourceColumns+` FROM shared_resources WHERE id = ?`, id).
		Scan(&res.ID, &res.DataShareID, &res.Name, &res.Description, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("shared resource %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}
