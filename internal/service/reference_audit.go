package service

import (
	"context"

	"go.uber.org/zap"

	"farmsight/internal/repository"
)

// ReferenceAuditService periodically checks the reference dataset for gaps
// that would make estimates fail at request time: crops without any active
// price row, and crops without a single active yield profile. It only logs;
// fixing the data is an operator action.
type ReferenceAuditService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *ReferenceAuditService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}

	missingPrices, err := s.Repo.ListCropsMissingPriceData(ctx)
	if err != nil {
		return err
	}
	uncovered, err := s.Repo.ListCropsWithoutYieldCoverage(ctx)
	if err != nil {
		return err
	}

	if s.Logger == nil {
		return nil
	}
	if len(missingPrices) == 0 && len(uncovered) == 0 {
		s.Logger.Info("reference audit clean")
		return nil
	}
	for _, crop := range missingPrices {
		s.Logger.Warn("crop has no active price data",
			zap.String("crop_id", crop.ID),
			zap.String("crop_name", crop.Name),
		)
	}
	for _, crop := range uncovered {
		s.Logger.Warn("crop has no active yield profile",
			zap.String("crop_id", crop.ID),
			zap.String("crop_name", crop.Name),
		)
	}
	return nil
}
