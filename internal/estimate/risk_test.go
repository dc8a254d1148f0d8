package estimate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWeatherRisk(t *testing.T) {
	tests := []struct {
		irrigation string
		want       int
	}{
		{"rainfed", 85},
		{"canal", 40},
		{"borewell", 35},
		{"sprinkler", 20},
		{"drip", 15},
		{"RAINFED", 85},
		{"  Drip ", 15},
		{"flood", 50},
		{"", 50},
	}
	for _, tt := range tests {
		if got := weatherRisk(tt.irrigation); got != tt.want {
			t.Fatalf("weatherRisk(%q)=%d want=%d", tt.irrigation, got, tt.want)
		}
	}
}

func TestPriceVolatilityRisk(t *testing.T) {
	tests := []struct {
		name        string
		msp, market string
		want        int
	}{
		{"rice spread", "2369", "2300", 3},
		{"no msp", "0", "80000", 100},
		{"equal prices", "355", "355", 0},
		{"both zero scores riskless", "0", "0", 0},
		{"market above msp", "2585", "2600", 1},
	}
	for _, tt := range tests {
		if got := priceVolatilityRisk(dec(tt.msp), dec(tt.market)); got != tt.want {
			t.Fatalf("%s: priceVolatilityRisk=%d want=%d", tt.name, got, tt.want)
		}
	}
}

func TestIrrigationReliabilityRisk(t *testing.T) {
	tests := []struct {
		reliability float64
		want        int
	}{
		{40, 60},
		{95, 5},
		{100, 0},
		{0, 100},
		{120, 0},  // clamped
		{-10, 100}, // clamped
	}
	for _, tt := range tests {
		if got := irrigationReliabilityRisk(tt.reliability); got != tt.want {
			t.Fatalf("irrigationReliabilityRisk(%v)=%d want=%d", tt.reliability, got, tt.want)
		}
	}
}

func TestYieldVarianceRisk(t *testing.T) {
	tests := []struct {
		variance float64
		want     int
	}{
		{0.15, 15},
		{0.25, 25},
		{0, 0},
		{1, 100},
		{1.8, 100}, // above expected range, clamped at output
		{-0.2, 0},
	}
	for _, tt := range tests {
		if got := yieldVarianceRisk(tt.variance); got != tt.want {
			t.Fatalf("yieldVarianceRisk(%v)=%d want=%d", tt.variance, got, tt.want)
		}
	}
}

func TestScoreRisk_RainfedRice(t *testing.T) {
	// weather 85*0.30 + price 3*0.25 + reliability 60*0.25 + variance 15*0.20
	// = 25.5 + 0.75 + 15 + 3 = 44.25 -> 44
	score, b := ScoreRisk(RiskInput{
		IrrigationType:   "rainfed",
		ReliabilityScore: 40,
		YieldVariance:    0.15,
		MSP:              dec("2369"),
		AvgMarketPrice:   dec("2300"),
	})
	if score != 44 {
		t.Fatalf("score=%d want=44", score)
	}
	want := RiskBreakdown{WeatherRisk: 85, PriceVolatilityRisk: 3, IrrigationReliabilityRisk: 60, YieldVarianceRisk: 15}
	if b != want {
		t.Fatalf("breakdown=%+v want=%+v", b, want)
	}
}

func TestScoreRisk_Bounds(t *testing.T) {
	// Worst case everywhere still stays within [0,100].
	score, _ := ScoreRisk(RiskInput{
		IrrigationType:   "rainfed",
		ReliabilityScore: -500,
		YieldVariance:    10,
		MSP:              decimal.Zero,
		AvgMarketPrice:   dec("1"),
	})
	if score < 0 || score > 100 {
		t.Fatalf("score=%d out of [0,100]", score)
	}

	// Best case floors at 0.
	score, _ = ScoreRisk(RiskInput{
		IrrigationType:   "drip",
		ReliabilityScore: 100,
		YieldVariance:    0,
		MSP:              dec("100"),
		AvgMarketPrice:   dec("100"),
	})
	if score < 0 {
		t.Fatalf("score=%d below 0", score)
	}
}

func TestScoreRisk_MonotoneInSubRisks(t *testing.T) {
	base := RiskInput{
		IrrigationType:   "canal",
		ReliabilityScore: 70,
		YieldVariance:    0.2,
		MSP:              dec("2400"),
		AvgMarketPrice:   dec("2350"),
	}
	baseScore, _ := ScoreRisk(base)

	// Raising any single sub-risk never lowers the composite.
	worseWeather := base
	worseWeather.IrrigationType = "rainfed"
	if s, _ := ScoreRisk(worseWeather); s < baseScore {
		t.Fatalf("weather: %d < %d", s, baseScore)
	}

	worseReliability := base
	worseReliability.ReliabilityScore = 30
	if s, _ := ScoreRisk(worseReliability); s < baseScore {
		t.Fatalf("reliability: %d < %d", s, baseScore)
	}

	worseVariance := base
	worseVariance.YieldVariance = 0.6
	if s, _ := ScoreRisk(worseVariance); s < baseScore {
		t.Fatalf("variance: %d < %d", s, baseScore)
	}

	worseSpread := base
	worseSpread.AvgMarketPrice = dec("1200")
	if s, _ := ScoreRisk(worseSpread); s < baseScore {
		t.Fatalf("price volatility: %d < %d", s, baseScore)
	}
}
