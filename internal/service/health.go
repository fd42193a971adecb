package service

import (
	"context"

	"alerts_review/internal/repository"
)

type HealthService struct {
	caseRepo repository.CaseRepo
}

func NewHealthService(caseRepo repository.CaseRepo) *HealthService {
	return &HealthService{caseRepo: caseRepo}
}

// CaseCount proves the store answers by counting its cases.
func (s *HealthService) CaseCount(ctx context.Context) (int, error) {
	return s.caseRepo.Count(ctx)
}
