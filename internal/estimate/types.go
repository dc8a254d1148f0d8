package estimate

import "github.com/shopspring/decimal"

// CostInput is the farmer's itemized operating costs. Fields omitted by the
// caller stay at decimal zero; none may be negative once validated.
type CostInput struct {
	Seeds         decimal.Decimal `json:"seeds"`
	Fertilizer    decimal.Decimal `json:"fertilizer"`
	Pesticides    decimal.Decimal `json:"pesticides"`
	Labor         decimal.Decimal `json:"labor"`
	Irrigation    decimal.Decimal `json:"irrigation"`
	Equipment     decimal.Decimal `json:"equipment"`
	Transport     decimal.Decimal `json:"transport"`
	Miscellaneous decimal.Decimal `json:"miscellaneous"`
}

// Total is the exact sum of all cost line items, no rounding.
func (c CostInput) Total() decimal.Decimal {
	return c.Seeds.
		Add(c.Fertilizer).
		Add(c.Pesticides).
		Add(c.Labor).
		Add(c.Irrigation).
		Add(c.Equipment).
		Add(c.Transport).
		Add(c.Miscellaneous)
}

// Input is one estimate request, minus the authenticated user.
type Input struct {
	CropID         string
	RegionID       string
	LandSizeAcres  decimal.Decimal
	IrrigationType string
	Costs          CostInput
}

// Result is what the pipeline returns to the caller; the persisted record
// additionally carries the inputs and owner.
type Result struct {
	ExpectedYield decimal.Decimal `json:"expectedYield"`
	SelectedPrice decimal.Decimal `json:"selectedPrice"`
	Revenue       decimal.Decimal `json:"revenue"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	RiskScore     int             `json:"riskScore"`
	RiskBreakdown RiskBreakdown   `json:"riskBreakdown"`
}
