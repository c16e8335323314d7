package gds

import (
	"context"
	"fmt"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

type ShareInDatasetService struct {
	validator *validation.Validator
	repo      domain.DataShareInDatasetRepository
	audit     domain.AuditRepository
}

func NewShareInDatasetService(v *validation.Validator, repo domain.DataShareInDatasetRepository, audit domain.AuditRepository) *ShareInDatasetService {
	return &ShareInDatasetService{validator: v, repo: repo, audit: audit}
}

func (s *ShareInDatasetService) Create(ctx context.Context, link *domain.DataShareInDataset) (*domain.DataShareInDataset, error) {
	if link.Status == "" {
		link.Status = domain.ShareStatusNone
	}
	if err := s.validator.ValidateShareInDatasetCreate(ctx, link); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, link)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "shareindataset.create", "shareindataset", shareInDatasetName(created)))
	return created, nil
}

func (s *ShareInDatasetService) GetByID(ctx context.Context, id int64) (*domain.DataShareInDataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ShareInDatasetService) List(ctx context.Context) ([]domain.DataShareInDataset, error) {
	return s.repo.List(ctx)
}

func (s *ShareInDatasetService) Update(ctx context.Context, link *domain.DataShareInDataset) (*domain.DataShareInDataset, error) {
	existing, err := orNil(s.repo.GetByID(ctx, link.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateShareInDatasetUpdate(ctx, link, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, link)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "shareindataset.update", "shareindataset", shareInDatasetName(updated)))
	return updated, nil
}

func (s *ShareInDatasetService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateShareInDatasetDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "shareindataset.delete", "shareindataset", shareInDatasetName(existing)))
	return nil
}

func shareInDatasetName(link *domain.DataShareInDataset) string {
	return fmt.Sprintf("datashare=%d dataset=%d", link.DataShareID, link.DatasetID)
}

type DatasetInProjectService struct {
	validator *validation.Validator
	repo      domain.DatasetInProjectRepository
	audit     domain.AuditRepository
}

func NewDatasetInProjectService(v *validation.Validator, repo domain.DatasetInProjectRepository, audit domain.AuditRepository) *DatasetInProjectService {
	return &DatasetInProjectService{validator: v, repo: repo, audit: audit}
}

func (s *DatasetInProjectService) Create(ctx context.Context, link *domain.DatasetInProject) (*domain.DatasetInProject, error) {
	if err := s.validator.ValidateDatasetInProjectCreate(ctx, link); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, link)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datasetinproject.create", "datasetinproject", datasetInProjectName(created)))
	return created, nil
}

func (s *DatasetInProjectService) GetByID(ctx context.Context, id int64) (*domain.DatasetInProject, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DatasetInProjectService) List(ctx context.Context) ([]domain.DatasetInProject, error) {
	return s.repo.List(ctx)
}

func (s *DatasetInProjectService) Update(ctx context.Context, link *domain.DatasetInProject) (*domain.DatasetInProject, error) {
	existing, err := orNil(s.repo.GetByID(ctx, link.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDatasetInProjectUpdate(ctx, link, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, link)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datasetinproject.update", "datasetinproject", datasetInProjectName(updated)))
	return updated, nil
}

func (s *DatasetInProjectService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDatasetInProjectDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datasetinproject.delete", "datasetinproject", datasetInProjectName(existing)))
	return nil
}

func datasetInProjectName(link *domain.DatasetInProject) string {
	return fmt.Sprintf("dataset=%d project=%d", link.DatasetID, link.ProjectID)
}
