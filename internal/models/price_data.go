package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceData holds the two reference prices for a crop: the government minimum
// support price and the average open-market price. One active row per crop.
type PriceData struct {
	ID             string          `gorm:"primaryKey;type:text"`
	CropID         string          `gorm:"type:text;not null;index:idx_price_lookup"`
	MSP            decimal.Decimal `gorm:"column:msp;type:numeric(14,2);not null"`
	AvgMarketPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:Active;index:idx_price_lookup"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (PriceData) TableName() string {
	return "price_data"
}
