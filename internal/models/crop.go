package models

import "time"

type Crop struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:text;not null;index"`
	Unit      string    `gorm:"type:text;not null;default:quintal"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Crop) TableName() string {
	return "crops"
}
