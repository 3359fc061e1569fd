package calculation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sipgo/investment-calculator/internal/domain"
)

func TestSIPFutureValue_ZeroAmount(t *testing.T) {
	pe := NewProjectionEngine()
	rates := []float64{-5, 0, 8, 12}
	for _, r := range rates {
		got := pe.SIPFutureValue(decimal.Zero, decimal.NewFromFloat(r), 10)
		assert.True(t, got.IsZero(), "rate %v: expected 0, got %s", r, got)
	}
	got := pe.SIPFutureValue(decimal.NewFromInt(-100), decimal.NewFromInt(12), 10)
	assert.True(t, got.IsZero())
}

func TestSIPFutureValue_ZeroYears(t *testing.T) {
	pe := NewProjectionEngine()
	got := pe.SIPFutureValue(decimal.NewFromInt(5000), decimal.NewFromInt(12), 0)
	assert.True(t, got.IsZero(), "0 years means 0 months, annuity sums to 0")
}

func TestSIPFutureValue_ZeroRateIsLinear(t *testing.T) {
	pe := NewProjectionEngine()
	got := pe.SIPFutureValue(decimal.NewFromInt(5000), decimal.Zero, 10)
	assert.True(t, got.Equal(decimal.NewFromInt(5000*12*10)),
		"zero-rate SIP should accumulate linearly, got %s", got)
}

func TestSIPFutureValue_NegativeRateIsLinear(t *testing.T) {
	// Negative rates are accepted and fall into the linear branch, not rejected.
	pe := NewProjectionEngine()
	got := pe.SIPFutureValue(decimal.NewFromInt(1000), decimal.NewFromInt(-4), 5)
	assert.True(t, got.Equal(decimal.NewFromInt(1000*12*5)))
}

func TestLumpsumFutureValue_ZeroAmount(t *testing.T) {
	pe := NewProjectionEngine()
	got := pe.LumpsumFutureValue(decimal.Zero, decimal.NewFromInt(12), 10)
	assert.True(t, got.IsZero())
}

func TestLumpsumFutureValue_ZeroRate(t *testing.T) {
	pe := NewProjectionEngine()
	amount := decimal.NewFromInt(50000)
	got := pe.LumpsumFutureValue(amount, decimal.Zero, 10)
	assert.True(t, got.Equal(amount), "zero-rate lumpsum is unchanged, got %s", got)
}

func TestMonthlyRate_EffectiveAnnualDerivation(t *testing.T) {
	// 12% effective annual: (1.12)^(1/12) - 1, not 0.12 / 12.
	got := MonthlyRate(decimal.NewFromInt(12)).InexactFloat64()
	assert.InDelta(t, 0.0094888, got, 1e-6)
	assert.Greater(t, math.Abs(got-0.01), 1e-4, "monthly rate must not be a flat 12%%/12")
}

func TestConcreteScenario(t *testing.T) {
	// sip=5000, lumpsum=50000, 10 years, 12% effective annual.
	pe := NewProjectionEngine()
	inputs := domain.InvestmentInputs{
		SIPAmount:           decimal.NewFromInt(5000),
		LumpsumAmount:       decimal.NewFromInt(50000),
		HorizonYears:        10,
		AnnualReturnPercent: decimal.NewFromInt(12),
	}

	lump := pe.LumpsumFutureValue(inputs.LumpsumAmount, inputs.AnnualReturnPercent, 10)
	assert.InDelta(t, 155292.41, lump.InexactFloat64(), 0.01, "50000 x 1.12^10")

	// Reference annuity-due value computed independently in float math.
	r := math.Pow(1.12, 1.0/12.0) - 1
	wantSIP := 5000 * ((math.Pow(1+r, 120) - 1) / r) * (1 + r)
	sip := pe.SIPFutureValue(inputs.SIPAmount, inputs.AnnualReturnPercent, 10)
	assert.InDelta(t, wantSIP, sip.InexactFloat64(), 0.05)

	// The naive 1%-per-month approximation lands on a visibly different value.
	naiveR := 0.01
	naive := 5000 * ((math.Pow(1+naiveR, 120) - 1) / naiveR) * (1 + naiveR)
	assert.Greater(t, math.Abs(naive-sip.InexactFloat64()), 1000.0)

	summary := pe.Summarize(inputs)
	assert.True(t, summary.TotalInvested.Equal(decimal.NewFromInt(650000)))
	assert.True(t, summary.TotalFutureValue.Equal(sip.Add(lump)))
	assert.True(t, summary.TotalGain.Equal(summary.TotalFutureValue.Sub(summary.TotalInvested)))
}

func TestFutureValue_Monotonicity(t *testing.T) {
	pe := NewProjectionEngine()
	sip := decimal.NewFromInt(5000)
	lump := decimal.NewFromInt(50000)
	rate := decimal.NewFromInt(8)

	for years := 1; years < 30; years++ {
		assert.True(t,
			pe.SIPFutureValue(sip, rate, years+1).GreaterThan(pe.SIPFutureValue(sip, rate, years)),
			"SIP FV must be strictly increasing in years (year %d)", years)
		assert.True(t,
			pe.LumpsumFutureValue(lump, rate, years+1).GreaterThan(pe.LumpsumFutureValue(lump, rate, years)),
			"lumpsum FV must be strictly increasing in years (year %d)", years)
	}

	for _, pair := range [][2]float64{{1, 2}, {5, 8}, {11.5, 12}, {12, 20}} {
		lo := decimal.NewFromFloat(pair[0])
		hi := decimal.NewFromFloat(pair[1])
		assert.True(t, pe.SIPFutureValue(sip, hi, 10).GreaterThan(pe.SIPFutureValue(sip, lo, 10)),
			"SIP FV must be strictly increasing in rate (%v vs %v)", pair[0], pair[1])
		assert.True(t, pe.LumpsumFutureValue(lump, hi, 10).GreaterThan(pe.LumpsumFutureValue(lump, lo, 10)),
			"lumpsum FV must be strictly increasing in rate (%v vs %v)", pair[0], pair[1])
	}
}

func TestBuildYearlySeries(t *testing.T) {
	pe := NewProjectionEngine()
	inputs := domain.InvestmentInputs{
		SIPAmount:           decimal.NewFromInt(5000),
		LumpsumAmount:       decimal.NewFromInt(50000),
		HorizonYears:        10,
		AnnualReturnPercent: decimal.NewFromInt(12),
	}

	series := pe.BuildYearlySeries(inputs)
	assert.Len(t, series, 10)

	for i, yp := range series {
		assert.Equal(t, i+1, yp.Year, "years must ascend 1..horizon with no gaps")
		assert.True(t, yp.TotalValue.Equal(yp.SIPValue.Add(yp.LumpsumValue)),
			"year %d: total must equal sip + lumpsum", yp.Year)
	}

	// Final entry agrees exactly with direct calls at the horizon.
	summary := pe.Summarize(inputs)
	final := series[len(series)-1]
	assert.True(t, final.TotalValue.Equal(summary.TotalFutureValue),
		"series final total %s != summary future value %s", final.TotalValue, summary.TotalFutureValue)
	assert.True(t, final.SIPValue.Equal(pe.SIPFutureValue(inputs.SIPAmount, inputs.AnnualReturnPercent, 10)))
	assert.True(t, final.LumpsumValue.Equal(pe.LumpsumFutureValue(inputs.LumpsumAmount, inputs.AnnualReturnPercent, 10)))
}

func TestProject(t *testing.T) {
	pe := NewProjectionEngine()
	pe.SetLogger(nil) // nil falls back to no-op

	inputs := domain.InvestmentInputs{
		SIPAmount:           decimal.NewFromInt(2500),
		LumpsumAmount:       decimal.NewFromInt(10000),
		HorizonYears:        15,
		AnnualReturnPercent: decimal.NewFromFloat(9.5),
	}

	result := pe.Project(inputs)
	assert.Len(t, result.Series, 15)
	assert.True(t, result.FinalYear().TotalValue.Equal(result.Summary.TotalFutureValue))
	assert.False(t, result.GeneratedAt.IsZero())

	// Re-running produces the same numbers; the engine holds no state.
	again := pe.Project(inputs)
	assert.True(t, again.Summary.TotalFutureValue.Equal(result.Summary.TotalFutureValue))
}

func TestTotalGainCanBeNegative(t *testing.T) {
	pe := NewProjectionEngine()
	inputs := domain.InvestmentInputs{
		LumpsumAmount:       decimal.NewFromInt(10000),
		HorizonYears:        5,
		AnnualReturnPercent: decimal.NewFromInt(-10),
	}
	summary := pe.Summarize(inputs)
	assert.True(t, summary.TotalGain.IsNegative())
}
