package estimate

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Sub-risk weights. Weather dominates agricultural exposure; price and
// irrigation reliability are secondary and equal; yield variance is partially
// captured by the irrigation choice already, so it weighs least.
const (
	weightWeather               = 0.30
	weightPriceVolatility       = 0.25
	weightIrrigationReliability = 0.25
	weightYieldVariance         = 0.20
)

// Irrigation type is the available proxy for weather exposure: rainfed is
// fully weather-dependent, drip barely at all.
var weatherRiskByIrrigation = map[string]int{
	"rainfed":   85,
	"canal":     40,
	"borewell":  35,
	"sprinkler": 20,
	"drip":      15,
}

const defaultWeatherRisk = 50

type RiskInput struct {
	IrrigationType   string
	ReliabilityScore float64
	YieldVariance    float64
	MSP              decimal.Decimal
	AvgMarketPrice   decimal.Decimal
}

type RiskBreakdown struct {
	WeatherRisk               int `json:"weatherRisk"`
	PriceVolatilityRisk       int `json:"priceVolatilityRisk"`
	IrrigationReliabilityRisk int `json:"irrigationReliabilityRisk"`
	YieldVarianceRisk         int `json:"yieldVarianceRisk"`
}

// ScoreRisk combines the four weighted sub-risks into a composite 0-100
// score, higher = riskier, and returns the breakdown alongside.
func ScoreRisk(in RiskInput) (int, RiskBreakdown) {
	b := RiskBreakdown{
		WeatherRisk:               weatherRisk(in.IrrigationType),
		PriceVolatilityRisk:       priceVolatilityRisk(in.MSP, in.AvgMarketPrice),
		IrrigationReliabilityRisk: irrigationReliabilityRisk(in.ReliabilityScore),
		YieldVarianceRisk:         yieldVarianceRisk(in.YieldVariance),
	}
	composite := float64(b.WeatherRisk)*weightWeather +
		float64(b.PriceVolatilityRisk)*weightPriceVolatility +
		float64(b.IrrigationReliabilityRisk)*weightIrrigationReliability +
		float64(b.YieldVarianceRisk)*weightYieldVariance
	return clampScore(int(math.Round(composite))), b
}

func weatherRisk(irrigationType string) int {
	if r, ok := weatherRiskByIrrigation[strings.ToLower(strings.TrimSpace(irrigationType))]; ok {
		return r
	}
	return defaultWeatherRisk
}

// priceVolatilityRisk = min(round(|msp - market| / max(msp, market) * 100), 100).
// Both prices zero scores 0: there is nothing to diverge from.
func priceVolatilityRisk(msp, avgMarketPrice decimal.Decimal) int {
	maxPrice := decimal.Max(msp, avgMarketPrice)
	if maxPrice.IsZero() {
		return 0
	}
	ratio, _ := msp.Sub(avgMarketPrice).Abs().Div(maxPrice).Float64()
	return clampScore(int(math.Round(ratio * 100)))
}

func irrigationReliabilityRisk(reliabilityScore float64) int {
	return clampScore(int(math.Round(100 - reliabilityScore)))
}

// yieldVariance is expected in [0,1]; larger values are clamped, not rejected.
func yieldVarianceRisk(yieldVariance float64) int {
	return clampScore(int(math.Round(yieldVariance * 100)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
