package gds

import (
	"context"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

type DatasetService struct {
	validator *validation.Validator
	repo      domain.DatasetRepository
	audit     domain.AuditRepository
}

func NewDatasetService(v *validation.Validator, repo domain.DatasetRepository, audit domain.AuditRepository) *DatasetService {
	return &DatasetService{validator: v, repo: repo, audit: audit}
}

func (s *DatasetService) Create(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error) {
	if ds.Name == "" {
		return nil, domain.ErrValidation("dataset name is required")
	}
	if err := s.validator.ValidateDatasetCreate(ctx, ds); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, ds)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "dataset.create", "dataset", created.Name))
	return created, nil
}

func (s *DatasetService) GetByID(ctx context.Context, id int64) (*domain.Dataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DatasetService) GetByName(ctx context.Context, name string) (*domain.Dataset, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *DatasetService) List(ctx context.Context) ([]domain.Dataset, error) {
	return s.repo.List(ctx)
}

func (s *DatasetService) Update(ctx context.Context, ds *domain.Dataset) (*domain.Dataset, error) {
	existing, err := orNil(s.repo.GetByID(ctx, ds.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDatasetUpdate(ctx, ds, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, ds)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "dataset.update", "dataset", updated.Name))
	return updated, nil
}

func (s *DatasetService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDatasetDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "dataset.delete", "dataset", existing.Name))
	return nil
}
