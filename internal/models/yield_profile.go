package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// YieldProfile is reference data: the expected per-acre yield for a crop in a
// region. One active row per (crop, region) pair; the estimate pipeline reads
// it fresh on every request and never writes it.
type YieldProfile struct {
	ID               string          `gorm:"primaryKey;type:text"`
	CropID           string          `gorm:"type:text;not null;index:idx_yield_lookup"`
	RegionID         string          `gorm:"type:text;not null;index:idx_yield_lookup"`
	BaseYieldPerAcre decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	// YieldVariance is expected in [0,1]; out-of-range values are clamped by
	// the risk scorer, not rejected here.
	YieldVariance float64   `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(20);not null;default:Active;index:idx_yield_lookup"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (YieldProfile) TableName() string {
	return "yield_profiles"
}
