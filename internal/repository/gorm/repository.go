package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"farmsight/internal/models"
	"farmsight/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- reference lookups ------------------------------------------------------

func (s *Store) FindActiveYieldProfile(ctx context.Context, cropID, regionID string) (*models.YieldProfile, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.YieldProfile
	err := s.db.WithContext(ctx).
		Where("crop_id = ? AND region_id = ? AND status = ?", cropID, regionID, models.StatusActive).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) FindActiveIrrigationModifier(ctx context.Context, irrigationType string) (*models.IrrigationModifier, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.IrrigationModifier
	err := s.db.WithContext(ctx).
		Where("LOWER(irrigation_type) = ? AND status = ?", strings.ToLower(strings.TrimSpace(irrigationType)), models.StatusActive).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) FindActivePriceData(ctx context.Context, cropID string) (*models.PriceData, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.PriceData
	err := s.db.WithContext(ctx).
		Where("crop_id = ? AND status = ?", cropID, models.StatusActive).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- estimates --------------------------------------------------------------

func (s *Store) CreateEstimate(ctx context.Context, item *models.Estimate) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetEstimateByID(ctx context.Context, id string) (*models.Estimate, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Estimate
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListEstimatesByUser(ctx context.Context, userID string, params repository.ListEstimatesParams) ([]models.Estimate, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.estimatesByUser(ctx, userID, params)
	limit := normalizeLimit(params.Limit, 50)
	offset := normalizeOffset(params.Offset)
	var items []models.Estimate
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountEstimatesByUser(ctx context.Context, userID string, params repository.ListEstimatesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.estimatesByUser(ctx, userID, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) estimatesByUser(ctx context.Context, userID string, params repository.ListEstimatesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Estimate{}).Where("user_id = ?", userID)
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(*params.Status))
	}
	return query
}

func (s *Store) SetEstimateStatus(ctx context.Context, id, userID, status string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Model(&models.Estimate{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// --- reference listings -----------------------------------------------------

func (s *Store) ListActiveCrops(ctx context.Context) ([]models.Crop, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Crop
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListActiveRegions(ctx context.Context) ([]models.Region, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Region
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListActiveIrrigationModifiers(ctx context.Context) ([]models.IrrigationModifier, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.IrrigationModifier
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("irrigation_type asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListActiveYieldCoverage(ctx context.Context) ([]repository.YieldCoverage, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []repository.YieldCoverage
	if err := s.db.WithContext(ctx).
		Model(&models.YieldProfile{}).
		Select("crop_id, region_id").
		Where("status = ?", models.StatusActive).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- seed-data diagnostics --------------------------------------------------

func (s *Store) ListCropsMissingPriceData(ctx context.Context) ([]models.Crop, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Crop
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Where("id NOT IN (?)", s.db.
			Model(&models.PriceData{}).
			Select("crop_id").
			Where("status = ?", models.StatusActive)).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListCropsWithoutYieldCoverage(ctx context.Context) ([]models.Crop, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Crop
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Where("id NOT IN (?)", s.db.
			Model(&models.YieldProfile{}).
			Select("crop_id").
			Where("status = ?", models.StatusActive)).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
