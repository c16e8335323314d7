package gds

import (
	"context"

	"sharegov/internal/domain"
	"sharegov/internal/validation"
)

type ProjectService struct {
	validator *validation.Validator
	repo      domain.ProjectRepository
	audit     domain.AuditRepository
}

func NewProjectService(v *validation.Validator, repo domain.ProjectRepository, audit domain.AuditRepository) *ProjectService {
	return &ProjectService{validator: v, repo: repo, audit: audit}
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p.Name == "" {
		return nil, domain.ErrValidation("project name is required")
	}
	if err := s.validator.ValidateProjectCreate(ctx, p); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "project.create", "project", created.Name))
	return created, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	existing, err := orNil(s.repo.GetByID(ctx, p.ID))
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateProjectUpdate(ctx, p, existing); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "project.update", "project", updated.Name))
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	existing, err := orNil(s.repo.GetByID(ctx, id))
	if err != nil {
		return err
	}
	if err := s.validator.ValidateProjectDelete(ctx, id, existing); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Insert(ctx, auditEntry(ctx, "project.delete", "project", existing.Name))
	return nil
}
