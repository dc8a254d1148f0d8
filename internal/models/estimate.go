package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Estimate is the immutable record of one pipeline run: the farmer's inputs
// plus every computed output. Rows are created once and never updated, except
// for the Status flag on soft delete.
type Estimate struct {
	ID             string          `gorm:"primaryKey;type:text"`
	UserID         string          `gorm:"type:text;not null;index:idx_estimates_user"`
	CropID         string          `gorm:"type:text;not null"`
	RegionID       string          `gorm:"type:text;not null"`
	LandSizeAcres  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IrrigationType string          `gorm:"type:text;not null"`
	// Costs is the CostInput snapshot as submitted (after zero-defaulting).
	Costs         datatypes.JSON  `gorm:"not null"`
	ExpectedYield decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SelectedPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Revenue       decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	TotalCost     decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	// NetProfit may be negative.
	NetProfit decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	RiskScore int             `gorm:"not null"`
	// RiskBreakdown holds the four sub-risk scores as JSON.
	RiskBreakdown datatypes.JSON `gorm:"not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:Active;index:idx_estimates_user"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (Estimate) TableName() string {
	return "estimates"
}
