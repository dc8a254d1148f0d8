package estimate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpectedYield(t *testing.T) {
	tests := []struct {
		name string
		base string
		land string
		mult float64
		want string
	}{
		{"canal rice two acres", "14.5", "2", 1.0, "29"},
		{"drip multiplier", "14.5", "2", 1.25, "36.25"},
		{"rainfed penalty", "20", "1", 0.7, "14"},
		{"fractional rounding", "13.33", "1.5", 1.1, "21.99"},
	}
	for _, tt := range tests {
		got := ExpectedYield(dec(tt.base), dec(tt.land), tt.mult)
		if !got.Equal(dec(tt.want)) {
			t.Fatalf("%s: ExpectedYield=%s want=%s", tt.name, got, tt.want)
		}
	}
}

func TestExpectedYield_LinearInLandSize(t *testing.T) {
	base := dec("14.5")
	one := ExpectedYield(base, dec("2"), 1.1)
	two := ExpectedYield(base, dec("4"), 1.1)
	if !two.Equal(one.Mul(dec("2"))) {
		t.Fatalf("doubling land size: got %s, want %s", two, one.Mul(dec("2")))
	}
}

func TestSelectPrice(t *testing.T) {
	tests := []struct {
		msp, market, want string
	}{
		{"2369", "2300", "2369"},
		{"2585", "2600", "2600"},
		{"0", "80000", "80000"},
		{"0", "0", "0"},
		{"355", "355", "355"},
	}
	for _, tt := range tests {
		got := SelectPrice(dec(tt.msp), dec(tt.market))
		if !got.Equal(dec(tt.want)) {
			t.Fatalf("SelectPrice(%s, %s)=%s want=%s", tt.msp, tt.market, got, tt.want)
		}
	}
}

func TestRevenue(t *testing.T) {
	got := Revenue(dec("29"), dec("2369"))
	if !got.Equal(dec("68701")) {
		t.Fatalf("Revenue=%s want=68701", got)
	}
}

func TestCostInputTotal(t *testing.T) {
	costs := CostInput{Seeds: dec("5000"), Fertilizer: dec("3000")}
	if got := costs.Total(); !got.Equal(dec("8000")) {
		t.Fatalf("Total=%s want=8000", got)
	}

	// Zero value sums to zero: omitted fields default cleanly.
	if got := (CostInput{}).Total(); !got.IsZero() {
		t.Fatalf("empty Total=%s want=0", got)
	}

	// Exact sum, order independent.
	full := CostInput{
		Seeds:         dec("100.10"),
		Fertilizer:    dec("200.20"),
		Pesticides:    dec("300.30"),
		Labor:         dec("400.40"),
		Irrigation:    dec("500.50"),
		Equipment:     dec("600.60"),
		Transport:     dec("700.70"),
		Miscellaneous: dec("800.80"),
	}
	if got := full.Total(); !got.Equal(dec("3603.60")) {
		t.Fatalf("Total=%s want=3603.60", got)
	}
}

func TestNetProfit(t *testing.T) {
	if got := NetProfit(dec("68701"), dec("8000")); !got.Equal(dec("60701")) {
		t.Fatalf("NetProfit=%s want=60701", got)
	}
	// Costs above revenue produce a loss, not an error.
	if got := NetProfit(dec("1000"), dec("2500")); !got.Equal(dec("-1500")) {
		t.Fatalf("NetProfit=%s want=-1500", got)
	}
}
