package gds

import (
	"context"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

type DataShareService struct {
	validator *validation.Validator
	repo      domain.DataShareRepository
	audit     domain.AuditRepository
}

func NewDataShareService(v *validation.Validator, repo domain.DataShareRepository, audit domain.AuditRepository) *DataShareService {
	return &DataShareService{validator: v, repo: repo, audit: audit}
}

func (s *DataShareService) Create(ctx context.Context, sh *domain.DataShare) (*domain.DataShare, error) {
	if sh.Name == "" {
		return nil, domain.ErrValidation("data share name is required")
	}
	if err := s.validator.ValidateDataShareCreate(ctx, sh); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, sh)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datashare.create", "datashare", created.Name))
	return created, nil
}

func (s *DataShareService) GetByID(ctx context.Context, id int64) (*domain.DataShare, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DataShareService) GetByName(ctx context.Context, name string) (*domain.DataShare, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *DataShareService) List(ctx context.Context) ([]domain.DataShare, error) {
	return s.repo.List(ctx)
}

func (s *DataShareService) Update(ctx context.Context, sh *domain.DataShare) (*domain.DataShare, error) {
	existing, err := orNil(s.repo.GetByID(ctx, sh.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDataShareUpdate(ctx, sh, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, sh)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datashare.update", "datashare", updated.Name))
	return updated, nil
}

func (s *DataShareService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateDataShareDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "datashare.delete", "datashare", existing.Name))
	return nil
}
