package estimate

import "github.com/shopspring/decimal"

// round2 rounds to two decimal places, halves away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ExpectedYield = round2(baseYieldPerAcre * landSizeAcres * irrigationMultiplier).
// Callers guarantee positive inputs.
func ExpectedYield(baseYieldPerAcre, landSizeAcres decimal.Decimal, irrigationMultiplier float64) decimal.Decimal {
	return round2(baseYieldPerAcre.Mul(landSizeAcres).Mul(decimal.NewFromFloat(irrigationMultiplier)))
}

// SelectPrice picks the better of the two selling channels: government
// procurement at MSP or the open market. Both zero means the crop has no
// usable price data; the estimate degrades to zero revenue rather than
// failing.
func SelectPrice(msp, avgMarketPrice decimal.Decimal) decimal.Decimal {
	return decimal.Max(msp, avgMarketPrice)
}

// Revenue = round2(expectedYield * selectedPrice).
func Revenue(expectedYield, selectedPrice decimal.Decimal) decimal.Decimal {
	return round2(expectedYield.Mul(selectedPrice))
}

// NetProfit = round2(revenue - totalCost). Negative means a projected loss.
func NetProfit(revenue, totalCost decimal.Decimal) decimal.Decimal {
	return round2(revenue.Sub(totalCost))
}
