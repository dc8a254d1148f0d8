package models

import "time"

type Region struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"type:text;not null"`
	State     string    `gorm:"type:text;not null;index"`
	District  string    `gorm:"type:text;not null"`
	Climate   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Region) TableName() string {
	return "regions"
}
