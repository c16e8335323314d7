package gds

import (
	"context"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

type SharedResourceService struct {
	validator *validation.Validator
	repo      domain.SharedResourceRepository
	audit     domain.AuditRepository
}

func NewSharedResourceService(v *validation.Validator, repo domain.SharedResourceRepository, audit domain.AuditRepository) *SharedResourceService {
	return &SharedResourceService{validator: v, repo: repo, audit: audit}
}

func (s *SharedResourceService) Create(ctx context.Context, res *domain.SharedResource) (*domain.SharedResource, error) {
	if res.Name == "" {
		return nil, domain.ErrValidation("shared resource name is required")
	}
	if err := s.validator.ValidateSharedResourceCreate(ctx, res); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "sharedresource.create", "sharedresource", created.Name))
	return created, nil
}

func (s *SharedResourceService) GetByID(ctx context.Context, id int64) (*domain.SharedResource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SharedResourceService) ListForDataShare(ctx context.Context, dataShareID int64) ([]domain.SharedResource, error) {
	return s.repo.ListForDataShare(ctx, dataShareID)
}

func (s *SharedResourceService) Update(ctx context.Context, res *domain.SharedResource) (*domain.SharedResource, error) {
	existing, err := orNil(s.repo.GetByID(ctx, res.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSharedResourceUpdate(ctx, res, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "sharedresource.update", "sharedresource", updated.Name))
	return updated, nil
}

func (s *SharedResourceService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateSharedResourceDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "sharedresource.delete", "sharedresource", existing.Name))
	return nil
}
