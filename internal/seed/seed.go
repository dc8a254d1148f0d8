package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmsight/internal/models"
)

// Run populates the Bihar reference dataset on an empty database. Seeding is
// skipped entirely when any crop row exists, so restarts never duplicate or
// overwrite operator-edited reference data. IDs are deterministic slugs to
// keep the dataset stable across environments.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var cropCount int64
	if err := db.WithContext(ctx).Model(&models.Crop{}).Count(&cropCount).Error; err != nil {
		return fmt.Errorf("count crops: %w", err)
	}
	if cropCount > 0 {
		if logger != nil {
			logger.Info("reference data present, skipping seed", zap.Int64("crops", cropCount))
		}
		return nil
	}

	crops := cropSeed()
	regions := regionSeed()
	profiles := yieldProfileSeed(crops, regions)
	prices := priceSeed()
	modifiers := irrigationSeed()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&crops).Error; err != nil {
			return fmt.Errorf("seed crops: %w", err)
		}
		if err := tx.Create(&regions).Error; err != nil {
			return fmt.Errorf("seed regions: %w", err)
		}
		if err := tx.CreateInBatches(&profiles, 100).Error; err != nil {
			return fmt.Errorf("seed yield profiles: %w", err)
		}
		if err := tx.Create(&prices).Error; err != nil {
			return fmt.Errorf("seed price data: %w", err)
		}
		if err := tx.Create(&modifiers).Error; err != nil {
			return fmt.Errorf("seed irrigation modifiers: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Info("reference data seeded",
			zap.Int("crops", len(crops)),
			zap.Int("regions", len(regions)),
			zap.Int("yield_profiles", len(profiles)),
			zap.Int("price_rows", len(prices)),
			zap.Int("irrigation_types", len(modifiers)),
		)
	}
	return nil
}

type cropSpec struct {
	id       string
	name     string
	category string
	// baseYield is quintals per acre before irrigation and regional effects.
	baseYield decimal.Decimal
	variance  float64
	msp       decimal.Decimal
	avgPrice  decimal.Decimal
}

// 2025-26 season figures for the ten major crops of Bihar. MSP zero means the
// crop has no support price (price selection then falls back to the market
// price); sugarcane carries the FRP in the MSP column.
func cropSpecs() []cropSpec {
	d := decimal.RequireFromString
	return []cropSpec{
		{"rice", "Rice (Paddy)", "Cereal", d("14.5"), 0.15, d("2369"), d("2300")},
		{"wheat", "Wheat", "Cereal", d("13.0"), 0.12, d("2585"), d("2600")},
		{"maize", "Maize", "Cereal", d("20.0"), 0.15, d("2400"), d("2350")},
		{"makhana", "Makhana", "Cash Crop", d("8.0"), 0.25, d("0"), d("80000")},
		{"sugarcane", "Sugarcane", "Cash Crop", d("260.0"), 0.15, d("355"), d("350")},
		{"lentil", "Lentil (Masoor)", "Pulses", d("5.5"), 0.10, d("6425"), d("6500")},
		{"gram", "Gram (Chana)", "Pulses", d("6.0"), 0.10, d("5440"), d("5600")},
		{"mustard", "Mustard", "Oilseeds", d("6.5"), 0.10, d("5650"), d("5500")},
		{"jute", "Jute", "Cash Crop", d("10.0"), 0.20, d("5335"), d("5200")},
		{"potato", "Potato", "Horticulture", d("85.0"), 0.15, d("0"), d("1800")},
	}
}

var biharDistricts = []string{
	"Araria", "Arwal", "Aurangabad", "Banka", "Begusarai", "Bhagalpur", "Bhojpur", "Buxar",
	"Darbhanga", "East Champaran", "Gaya", "Gopalganj", "Jamui", "Jehanabad", "Kaimur", "Katihar",
	"Khagaria", "Kishanganj", "Lakhisarai", "Madhepura", "Madhubani", "Munger", "Muzaffarpur", "Nalanda",
	"Nawada", "Patna", "Purnia", "Rohtas", "Saharsa", "Samastipur", "Saran", "Sheikhpura",
	"Sheohar", "Sitamarhi", "Siwan", "Supaul", "Vaishali", "West Champaran",
}

// regionalBonus captures the well-known district specialities: Rohtas is the
// rice bowl of Bihar, Purnia leads on maize, Darbhanga on makhana ponds and
// West Champaran on sugarcane.
var regionalBonus = map[string]map[string]decimal.Decimal{
	"Rohtas":         {"rice": decimal.RequireFromString("1.15"), "wheat": decimal.RequireFromString("1.15")},
	"Purnia":         {"maize": decimal.RequireFromString("1.20")},
	"Darbhanga":      {"makhana": decimal.RequireFromString("1.25")},
	"West Champaran": {"sugarcane": decimal.RequireFromString("1.15")},
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func cropSeed() []models.Crop {
	specs := cropSpecs()
	out := make([]models.Crop, 0, len(specs))
	for _, s := range specs {
		out = append(out, models.Crop{
			ID:       s.id,
			Name:     s.name,
			Category: s.category,
			Unit:     "quintal",
			Status:   models.StatusActive,
		})
	}
	return out
}

func regionSeed() []models.Region {
	out := make([]models.Region, 0, len(biharDistricts))
	for _, district := range biharDistricts {
		out = append(out, models.Region{
			ID:       slug(district),
			Name:     district,
			State:    "Bihar",
			District: district,
			Climate:  "Humid Subtropical",
			Status:   models.StatusActive,
		})
	}
	return out
}

func yieldProfileSeed(crops []models.Crop, regions []models.Region) []models.YieldProfile {
	specByID := map[string]cropSpec{}
	for _, s := range cropSpecs() {
		specByID[s.id] = s
	}
	out := make([]models.YieldProfile, 0, len(crops)*len(regions))
	for _, region := range regions {
		for _, crop := range crops {
			spec := specByID[crop.ID]
			base := spec.baseYield
			if bonus, ok := regionalBonus[region.Name][crop.ID]; ok {
				base = base.Mul(bonus).Round(1)
			}
			out = append(out, models.YieldProfile{
				ID:               crop.ID + "-" + region.ID,
				CropID:           crop.ID,
				RegionID:         region.ID,
				BaseYieldPerAcre: base,
				YieldVariance:    spec.variance,
				Status:           models.StatusActive,
			})
		}
	}
	return out
}

func priceSeed() []models.PriceData {
	specs := cropSpecs()
	out := make([]models.PriceData, 0, len(specs))
	for _, s := range specs {
		out = append(out, models.PriceData{
			ID:             "price-" + s.id,
			CropID:         s.id,
			MSP:            s.msp,
			AvgMarketPrice: s.avgPrice,
			Status:         models.StatusActive,
		})
	}
	return out
}

func irrigationSeed() []models.IrrigationModifier {
	rows := []struct {
		irrigationType string
		multiplier     float64
		reliability    float64
	}{
		{"rainfed", 0.70, 40},
		{"canal", 1.00, 70},
		{"borewell", 1.10, 85},
		{"sprinkler", 1.15, 90},
		{"drip", 1.25, 95},
	}
	out := make([]models.IrrigationModifier, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.IrrigationModifier{
			ID:               r.irrigationType,
			IrrigationType:   r.irrigationType,
			YieldMultiplier:  r.multiplier,
			ReliabilityScore: r.reliability,
			Status:           models.StatusActive,
		})
	}
	return out
}
