package repository

import (
	"context"
	"database/sql"
	"errors"

	"sharegov/internal/domain"
)

// Provider implements domain.DataProvider over the metastore's read pool.
// Entity lookups translate row absence to a nil entity; only infrastructure
// failures surface as errors.
type Provider struct {
	db       *sql.DB
	security *SecurityRepo
	datasets *DatasetRepo
	projects *ProjectRepo
	shares   *DataShareRepo
}

func NewProvider(writeDB, readDB *sql.DB) *Provider {
	return &Provider{
		db:       readDB,
		security: NewSecurityRepo(readDB),
		datasets: NewDatasetRepo(writeDB, readDB),
		projects: NewProjectRepo(writeDB, readDB),
		shares:   NewDataShareRepo(writeDB, readDB),
	}
}

func (p *Provider) DatasetIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, p.db, `SELECT id FROM datasets WHERE name = ?`, name)
}

func (p *Provider) ProjectIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, p.db, `SELECT id FROM projects WHERE name = ?`, name)
}

func (p *Provider) DataShareIDByName(ctx context.Context, name string) (int64, bool, error) {
	return idByName(ctx, p.db, `SELECT id FROM data_shares WHERE name = ?`, name)
}

func (p *Provider) SharedResourceIDByName(ctx context.Context, dataShareID int64, name string) (int64, bool, error) {
	var id int64
	err := p.db.QueryRowContext(ctx,
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

func (p *Provider) DatasetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	ds, err := p.datasets.GetByID(ctx, id)
	return swallowNotFound(ds, err)
}

func (p *Provider) ProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	pr, err := p.projects.GetByID(ctx, id)
	return swallowNotFound(pr, err)
}

func (p *Provider) DataShareByID(ctx context.Context, id int64) (*domain.DataShare, error) {
	sh, err := p.shares.GetByID(ctx, id)
	return swallowNotFound(sh, err)
}

func (p *Provider) UserIDByName(ctx context.Context, name string) (int64, bool, error) {
	return p.security.UserIDByName(ctx, name)
}

func (p *Provider) GroupIDByName(ctx context.Context, name string) (int64, bool, error) {
	return p.security.GroupIDByName(ctx, name)
}

func (p *Provider) RoleIDByName(ctx context.Context, name string) (int64, bool, error) {
	return p.security.RoleIDByName(ctx, name)
}

func (p *Provider) ServiceIDByName(ctx context.Context, name string) (int64, bool, error) {
	return p.security.ServiceIDByName(ctx, name)
}

func (p *Provider) ZoneIDByName(ctx context.Context, name string) (int64, bool, error) {
	return p.security.ZoneIDByName(ctx, name)
}

func (p *Provider) GroupsForUser(ctx context.Context, userName string) (map[string]bool, error) {
	return p.security.GroupsForUser(ctx, userName)
}

func (p *Provider) RolesForUser(ctx context.Context, userName string) (map[string]bool, error) {
	return p.security.RolesForUser(ctx, userName)
}

func (p *Provider) IsServiceAdmin(ctx context.Context, userName, serviceName string) (bool, error) {
	return p.security.IsServiceAdmin(ctx, userName, serviceName)
}

func (p *Provider) IsZoneAdmin(ctx context.Context, userName, zoneName string) (bool, error) {
	return p.security.IsZoneAdmin(ctx, userName, zoneName)
}

func (p *Provider) AccessTypes(ctx context.Context, serviceName string) (map[string]bool, error) {
	return p.security.AccessTypes(ctx, serviceName)
}

func (p *Provider) MaskTypes(ctx context.Context, serviceName string) (map[string]bool, error) {
	return p.security.MaskTypes(ctx, serviceName)
}

func swallowNotFound[T any](v *T, err error) (*T, error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
