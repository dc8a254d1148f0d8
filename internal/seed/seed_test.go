package seed

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmsight/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Crop{},
		&models.Region{},
		&models.YieldProfile{},
		&models.IrrigationModifier{},
		&models.PriceData{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	if err := Run(context.Background(), db, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	counts := map[any]int64{
		&models.Crop{}:               10,
		&models.Region{}:             38,
		&models.YieldProfile{}:       380,
		&models.PriceData{}:          10,
		&models.IrrigationModifier{}: 5,
	}
	for model, want := range counts {
		var got int64
		if err := db.Model(model).Count(&got).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		if got != want {
			t.Errorf("%T rows = %d, want %d", model, got, want)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 2; i++ {
		if err := Run(context.Background(), db, nil); err != nil {
			t.Fatalf("Run #%d: %v", i+1, err)
		}
	}
	var crops int64
	db.Model(&models.Crop{}).Count(&crops)
	if crops != 10 {
		t.Fatalf("crops after double seed = %d, want 10", crops)
	}
}

func TestRegionalBonusApplied(t *testing.T) {
	db := openTestDB(t)
	if err := Run(context.Background(), db, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var rohtasRice, patnaRice models.YieldProfile
	if err := db.Where("crop_id = ? AND region_id = ?", "rice", "rohtas").First(&rohtasRice).Error; err != nil {
		t.Fatalf("rohtas rice profile: %v", err)
	}
	if err := db.Where("crop_id = ? AND region_id = ?", "rice", "patna").First(&patnaRice).Error; err != nil {
		t.Fatalf("patna rice profile: %v", err)
	}
	// 14.5 * 1.15 = 16.675, stored rounded to one decimal
	if got := rohtasRice.BaseYieldPerAcre.String(); got != "16.7" {
		t.Errorf("rohtas rice base yield = %s, want 16.7", got)
	}
	if got := patnaRice.BaseYieldPerAcre.String(); got != "14.5" {
		t.Errorf("patna rice base yield = %s, want 14.5", got)
	}
}

func TestZeroMSPCrops(t *testing.T) {
	db := openTestDB(t)
	if err := Run(context.Background(), db, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, cropID := range []string{"makhana", "potato"} {
		var row models.PriceData
		if err := db.Where("crop_id = ?", cropID).First(&row).Error; err != nil {
			t.Fatalf("price row for %s: %v", cropID, err)
		}
		if !row.MSP.IsZero() {
			t.Errorf("%s msp = %s, want 0", cropID, row.MSP)
		}
		if !row.AvgMarketPrice.IsPositive() {
			t.Errorf("%s market price = %s, want positive", cropID, row.AvgMarketPrice)
		}
	}
}
