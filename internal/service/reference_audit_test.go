package service

import (
	"context"
	"errors"
	"testing"

	"farmsight/internal/models"
	"farmsight/internal/repository"
)

type auditRepo struct {
	repository.Repository

	missingPrices []models.Crop
	uncovered     []models.Crop
	err           error
}

func (r *auditRepo) ListCropsMissingPriceData(context.Context) ([]models.Crop, error) {
	return r.missingPrices, r.err
}

func (r *auditRepo) ListCropsWithoutYieldCoverage(context.Context) ([]models.Crop, error) {
	return r.uncovered, r.err
}

func TestReferenceAuditRunOnce(t *testing.T) {
	s := &ReferenceAuditService{Repo: &auditRepo{
		missingPrices: []models.Crop{{ID: "makhana", Name: "Makhana"}},
		uncovered:     []models.Crop{{ID: "jute", Name: "Jute"}},
	}}
	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
}

func TestReferenceAuditSurfacesRepoError(t *testing.T) {
	want := errors.New("db down")
	s := &ReferenceAuditService{Repo: &auditRepo{err: want}}
	if err := s.RunOnce(context.Background()); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestReferenceAuditNilReceiver(t *testing.T) {
	var s *ReferenceAuditService
	if err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("nil receiver: %v", err)
	}
}
