package domain

import "context"

// DataProvider answers the read-only lookups the sharing validator needs.
// ID lookups report absence through the ok return rather than an error;
// entity lookups return nil when no such record exists. Errors are
// reserved for infrastructure problems.
type DataProvider interface {
	DatasetIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	ProjectIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	DataShareIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	SharedResourceIDByName(ctx context.Context, dataShareID int64, name string) (id int64, ok bool, err error)

	DatasetByID(ctx context.Context, id int64) (*Dataset, error)
	ProjectByID(ctx context.Context, id int64) (*Project, error)
	DataShareByID(ctx context.Context, id int64) (*DataShare, error)

	UserIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	GroupIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	RoleIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	ServiceIDByName(ctx context.Context, name string) (id int64, ok bool, err error)
	ZoneIDByName(ctx context.Context, name string) (id int64, ok bool, err error)

	// GroupsForUser returns the names of the groups the user belongs to.
	GroupsForUser(ctx context.Context, userName string) (map[string]bool, error)
	// RolesForUser returns the names of the roles the user holds, directly
	// or through group membership.
	RolesForUser(ctx context.Context, userName string) (map[string]bool, error)

	IsServiceAdmin(ctx context.Context, userName, serviceName string) (bool, error)
	IsZoneAdmin(ctx context.Context, userName, zoneName string) (bool, error)

	// AccessTypes returns the set of access-type names valid for a service.
	AccessTypes(ctx context.Context, serviceName string) (map[string]bool, error)
	// MaskTypes returns the set of mask-type names valid for a service.
	MaskTypes(ctx context.Context, serviceName string) (map[string]bool, error)
}

// DatasetRepository persists datasets.
type DatasetRepository interface {
	Create(ctx context.Context, ds *Dataset) (*Dataset, error)
	GetByID(ctx context.Context, id int64) (*Dataset, error)
	GetByName(ctx context.Context, name string) (*Dataset, error)
	List(ctx context.Context) ([]Dataset, error)
	Update(ctx context.Context, ds *Dataset) (*Dataset, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) (*Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, p *Project) (*Project, error)
	Delete(ctx context.Context, id int64) error
}

// DataShareRepository persists data shares.
type DataShareRepository interface {
	Create(ctx context.Context, sh *DataShare) (*DataShare, error)
	GetByID(ctx context.Context, id int64) (*DataShare, error)
	GetByName(ctx context.Context, name string) (*DataShare, error)
	List(ctx context.Context) ([]DataShare, error)
	Update(ctx context.Context, sh *DataShare) (*DataShare, error)
	Delete(ctx context.Context, id int64) error
}

// SharedResourceRepository persists shared resources.
type SharedResourceRepository interface {
	Create(ctx context.Context, res *SharedResource) (*SharedResource, error)
	GetByID(ctx context.Context, id int64) (*SharedResource, error)
	ListForDataShare(ctx context.Context, dataShareID int64) ([]SharedResource, error)
	Update(ctx context.Context, res *SharedResource) (*SharedResource, error)
	Delete(ctx context.Context, id int64) error
}

// DataShareInDatasetRepository persists data-share-in-dataset links.
type DataShareInDatasetRepository interface {
	Create(ctx context.Context, link *DataShareInDataset) (*DataShareInDataset, error)
	GetByID(ctx context.Context, id int64) (*DataShareInDataset, error)
	List(ctx context.Context) ([]DataShareInDataset, error)
	Update(ctx context.Context, link *DataShareInDataset) (*DataShareInDataset, error)
	Delete(ctx context.Context, id int64) error
}

// DatasetInProjectRepository persists dataset-in-project links.
type DatasetInProjectRepository interface {
	Create(ctx context.Context, link *DatasetInProject) (*DatasetInProject, error)
	GetByID(ctx context.Context, id int64) (*DatasetInProject, error)
	List(ctx context.Context) ([]DatasetInProject, error)
	Update(ctx context.Context, link *DatasetInProject) (*DatasetInProject, error)
	Delete(ctx context.Context, id int64) error
}

// AuditRepository records mutating operations.
type AuditRepository interface {
	Insert(ctx context.Context, entry *AuditEntry) error
	List(ctx context.Context, limit int) ([]AuditEntry, error)
}
