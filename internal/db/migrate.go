package db

import (
	"farmsight/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil {
		return nil
	}
	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.Crop{},
		&models.Region{},
		&models.YieldProfile{},
		&models.IrrigationModifier{},
		&models.PriceData{},
		&models.Estimate{},
	)
}
