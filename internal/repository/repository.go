package repository

import (
	"context"

	"farmsight/internal/models"
)

// Repository is the storage capability set the estimate pipeline depends on:
// three point lookups over reference data, one append-only estimate sink, and
// the read queries behind the reference-data and history endpoints.
//
// Find* methods return (nil, nil) when no active row matches; the caller
// decides how a miss is surfaced. Reference data is read fresh on every call,
// there is no caching layer.
type Repository interface {
	FindActiveYieldProfile(ctx context.Context, cropID, regionID string) (*models.YieldProfile, error)
	FindActiveIrrigationModifier(ctx context.Context, irrigationType string) (*models.IrrigationModifier, error)
	FindActivePriceData(ctx context.Context, cropID string) (*models.PriceData, error)

	CreateEstimate(ctx context.Context, item *models.Estimate) error
	GetEstimateByID(ctx context.Context, id string) (*models.Estimate, error)
	ListEstimatesByUser(ctx context.Context, userID string, params ListEstimatesParams) ([]models.Estimate, error)
	CountEstimatesByUser(ctx context.Context, userID string, params ListEstimatesParams) (int64, error)
	// SetEstimateStatus flips the status flag of an estimate owned by userID
	// and reports how many rows matched. Estimate bodies are never mutated.
	SetEstimateStatus(ctx context.Context, id, userID, status string) (int64, error)

	ListActiveCrops(ctx context.Context) ([]models.Crop, error)
	ListActiveRegions(ctx context.Context) ([]models.Region, error)
	ListActiveIrrigationModifiers(ctx context.Context) ([]models.IrrigationModifier, error)
	// ListActiveYieldCoverage returns every (crop, region) pair that has an
	// active yield profile, for the crop-to-region dropdown map.
	ListActiveYieldCoverage(ctx context.Context) ([]YieldCoverage, error)

	// Seed-data diagnostics for the reference audit job.
	ListCropsMissingPriceData(ctx context.Context) ([]models.Crop, error)
	ListCropsWithoutYieldCoverage(ctx context.Context) ([]models.Crop, error)
}

type ListEstimatesParams struct {
	Limit  int
	Offset int
	Status *string
}

type YieldCoverage struct {
	CropID   string
	RegionID string
}
