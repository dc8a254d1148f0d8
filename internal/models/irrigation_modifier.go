package models

import "time"

// IrrigationModifier maps an irrigation method to its yield multiplier and
// reliability. One active row per irrigation type.
type IrrigationModifier struct {
	ID             string `gorm:"primaryKey;type:text"`
	IrrigationType string `gorm:"type:text;not null;uniqueIndex"`
	// YieldMultiplier is typically 0.7 (rainfed) to 1.25 (drip).
	YieldMultiplier float64 `gorm:"not null;default:1"`
	// ReliabilityScore is 0-100, higher = more reliable water supply.
	ReliabilityScore float64   `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:Active;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (IrrigationModifier) TableName() string {
	return "irrigation_modifiers"
}
