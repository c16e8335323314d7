// Package gds implements the governed-data-sharing services: every mutation
// runs through the sharing validator before it touches the metastore, and
// successful mutations leave an audit trail.
package gds

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

// Services bundles the per-entity sharing services behind one constructor.
type Services struct {
	Datasets        *DatasetService
	Projects        *ProjectService
	DataShares      *DataShareService
	SharedResources *SharedResourceService
	ShareInDataset  *ShareInDatasetService
	DatasetProject  *DatasetInProjectService
	Audit           *AuditService
}

// Repos is the persistence surface the services operate on.
type Repos struct {
	Datasets        domain.DatasetRepository
	Projects        domain.ProjectRepository
	DataShares      domain.DataShareRepository
	SharedResources domain.SharedResourceRepository
	ShareInDataset  domain.DataShareInDatasetRepository
	DatasetProject  domain.DatasetInProjectRepository
	Audit           domain.AuditRepository
}

func NewServices(v *validation.Validator, r Repos) *Services {
	return &Services{
		Datasets:        NewDatasetService(v, r.Datasets, r.Audit),
		Projects:        NewProjectService(v, r.Projects, r.Audit),
		DataShares:      NewDataShareService(v, r.DataShares, r.Audit),
		SharedResources: NewSharedResourceService(v, r.SharedResources, r.Audit),
		ShareInDataset:  NewShareInDatasetService(v, r.ShareInDataset, r.Audit),
		DatasetProject:  NewDatasetInProjectService(v, r.DatasetProject, r.Audit),
		Audit:           NewAuditService(r.Audit),
	}
}

// auditEntry builds an audit record attributed to the context principal.
func auditEntry(ctx context.Context, action, objectType, objectName string) *domain.AuditEntry {
	principal := "system"
	if p, ok := domain.PrincipalFromContext(ctx); ok {
		principal = p.Name
	}
	return &domain.AuditEntry{
		ID:            uuid.NewString(),
		PrincipalName: principal,
		Action:        action,
		ObjectType:    objectType,
		ObjectName:    objectName,
		Status:        "ALLOWED",
	}
}

// orNil converts a not-found lookup result to a nil entity so the validator
// can report the absence as a validation failure rather than a hard error.
func orNil[T any](v *T, err error) (*T, error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
