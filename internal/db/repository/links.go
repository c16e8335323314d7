package repository

import (
	"context"
	"database/sql"
	"errors"

	"sharegov/internal/domain"
)

// DataShareInDatasetRepo persists data-share-in-dataset links.
type DataShareInDatasetRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewDataShareInDatasetRepo(writeDB, readDB *sql.DB) *DataShareInDatasetRepo {
	return &DataShareInDatasetRepo{w: writeDB, r: readDB}
}

const shareInDatasetColumns = `id, data_share_id, dataset_id, status, created_at, updated_at`

func (repo *DataShareInDatasetRepo) Create(ctx context.Context, link *domain.DataShareInDataset) (*domain.DataShareInDataset, error) {
	res, err := repo.w.ExecContext(ctx,
		`INSERT INTO data_share_in_dataset (data_share_id, dataset_id, status) VALUES (?, ?, ?)`,
		link.DataShareID, link.DatasetID, string(link.Status))
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *DataShareInDatasetRepo) GetByID(ctx context.Context, id int64) (*domain.DataShareInDataset, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *DataShareInDatasetRepo) List(ctx context.Context) ([]domain.DataShareInDataset, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+shareInDatasetColumns+` FROM data_share_in_dataset ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DataShareInDataset
	for rows.Next() {
		link, err := scanShareInDataset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *link)
	}
	return out, rows.Err()
}

func (repo *DataShareInDatasetRepo) Update(ctx context.Context, link *domain.DataShareInDataset) (*domain.DataShareInDataset, error) {
	res, err := repo.w.ExecContext(ctx,
		`UPDATE data_share_in_dataset SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(link.Status), link.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("data share in dataset %d not found", link.ID)
	}
	return repo.getByID(ctx, repo.w, link.ID)
}

func (repo *DataShareInDatasetRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.w.ExecContext(ctx, `DELETE FROM data_share_in_dataset WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("data share in dataset %d not found", id)
	}
	return nil
}

func (repo *DataShareInDatasetRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.DataShareInDataset, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+shareInDatasetColumns+` FROM data_share_in_dataset WHERE id = ?`, id)
	link, err := scanShareInDataset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("data share in dataset %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

func scanShareInDataset(row rowScanner) (*domain.DataShareInDataset, error) {
	var (
		link   domain.DataShareInDataset
		status string
	)
	err := row.Scan(&link.ID, &link.DataShareID, &link.DatasetID, &status,
		&link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if link.Status, err = domain.ParseShareStatus(status); err != nil {
		return nil, err
	}
	return &link, nil
}

// DatasetInProjectRepo persists dataset-in-project links.
type DatasetInProjectRepo struct {
	w *sql.DB
	r *sql.DB
}

func NewDatasetInProjectRepo(writeDB, readDB *sql.DB) *DatasetInProjectRepo {
	return &DatasetInProjectRepo{w: writeDB, r: readDB}
}

const datasetInProjectColumns = `id, dataset_id, project_id, created_at, updated_at`

func (repo *DatasetInProjectRepo) Create(ctx context.Context, link *domain.DatasetInProject) (*domain.DatasetInProject, error) {
	res, err := repo.w.ExecContext(ctx,
		`INSERT INTO dataset_in_project (dataset_id, project_id) VALUES (?, ?)`,
		link.DatasetID, link.ProjectID)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return repo.getByID(ctx, repo.w, id)
}

func (repo *DatasetInProjectRepo) GetByID(ctx context.Context, id int64) (*domain.DatasetInProject, error) {
	return repo.getByID(ctx, repo.r, id)
}

func (repo *DatasetInProjectRepo) List(ctx context.Context) ([]domain.DatasetInProject, error) {
	rows, err := repo.r.QueryContext(ctx,
		`SELECT `+datasetInProjectColumns+` FROM dataset_in_project ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DatasetInProject
	for rows.Next() {
		var link domain.DatasetInProject
		err := rows.Scan(&link.ID, &link.DatasetID, &link.ProjectID,
			&link.CreatedAt, &link.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

// Update touches updated_at only; the link's endpoints are immutable.
func (repo *DatasetInProjectRepo) Update(ctx context.Context, link *domain.DatasetInProject) (*domain.DatasetInProject, error) {
	res, err := repo.w.ExecContext(ctx,
		`UPDATE dataset_in_project SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, link.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrNotFound("dataset in project %d not found", link.ID)
	}
	return repo.getByID(ctx, repo.w, link.ID)
}

func (repo *DatasetInProjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.w.ExecContext(ctx, `DELETE FROM dataset_in_project WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound("dataset in project %d not found", id)
	}
	return nil
}

func (repo *DatasetInProjectRepo) getByID(ctx context.Context, db *sql.DB, id int64) (*domain.DatasetInProject, error) {
	var link domain.DatasetInProject
	err := db.QueryRowContext(ctx,
		`SELECT `+datasetInProjectColumns+` FROM dataset_in_project WHERE id = ?`, id).
		Scan(&link.ID, &link.DatasetID, &link.ProjectID, &link.CreatedAt, &link.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("dataset in project %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}
