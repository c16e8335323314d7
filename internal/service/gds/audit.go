package gds

import (
	"context"

	"sharegov/internal/domain"
)

type AuditService struct {
	repo domain.AuditRepository
}

func NewAuditService(repo domain.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.repo.List(ctx, limit)
}
