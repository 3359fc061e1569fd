package calculation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sipgo/investment-calculator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ProjectionEngine computes future values for combined SIP and lumpsum
// investments. All operations are pure and stateless; the engine is safe
// for concurrent use.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// MonthlyRate derives the monthly compounding rate from an effective annual
// rate given in percent units: (1 + annual)^(1/12) - 1. The annual figure is
// treated as already net of intra-year compounding, so this is NOT annual/12.
func MonthlyRate(annualReturnPercent decimal.Decimal) decimal.Decimal {
	annualRate := annualReturnPercent.Div(hundred)
	monthly := math.Pow(1+annualRate.InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(monthly)
}

// SIPFutureValue computes the future value of a monthly contribution stream
// made at the start of each month (annuity-due), compounded monthly.
// A non-positive rate degenerates to linear accumulation; the function is
// total over its numeric domain and never errors.
func (pe *ProjectionEngine) SIPFutureValue(sipAmount, annualReturnPercent decimal.Decimal, years int) decimal.Decimal {
	if sipAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	months := int64(years) * 12
	monthlyRate := MonthlyRate(annualReturnPercent)
	if monthlyRate.LessThanOrEqual(decimal.Zero) {
		return sipAmount.Mul(decimal.NewFromInt(months))
	}

	// Annuity-due: the trailing (1 + r) factor accounts for contributions at
	// period start rather than period end.
	onePlus := one.Add(monthlyRate)
	annuityFactor := onePlus.Pow(decimal.NewFromInt(months)).Sub(one).Div(monthlyRate)
	return sipAmount.Mul(annuityFactor).Mul(onePlus)
}

// LumpsumFutureValue computes the compound-growth projection of a single
// contribution: amount x (1 + annual)^years.
func (pe *ProjectionEngine) LumpsumFutureValue(lumpsumAmount, annualReturnPercent decimal.Decimal, years int) decimal.Decimal {
	if lumpsumAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	annualRate := annualReturnPercent.Div(hundred)
	return lumpsumAmount.Mul(one.Add(annualRate).Pow(decimal.NewFromInt(int64(years))))
}

// BuildYearlySeries materializes one YearlyProjection per year from 1 to
// HorizonYears inclusive, ascending. Each year is recomputed from the closed
// forms rather than accumulated by recurrence; the horizon is bounded at the
// validation boundary, so the extra cost is negligible.
func (pe *ProjectionEngine) BuildYearlySeries(inputs domain.InvestmentInputs) []domain.YearlyProjection {
	series := make([]domain.YearlyProjection, 0, inputs.HorizonYears)
	for year := 1; year <= inputs.HorizonYears; year++ {
		sipValue := pe.SIPFutureValue(inputs.SIPAmount, inputs.AnnualReturnPercent, year)
		lumpValue := pe.LumpsumFutureValue(inputs.LumpsumAmount, inputs.AnnualReturnPercent, year)
		series = append(series, domain.YearlyProjection{
			Year:         year,
			SIPValue:     sipValue,
			LumpsumValue: lumpValue,
			TotalValue:   sipValue.Add(lumpValue),
		})
	}
	return series
}

// Summarize derives the portfolio-level metrics at the horizon.
func (pe *ProjectionEngine) Summarize(inputs domain.InvestmentInputs) domain.ProjectionSummary {
	totalInvested := inputs.TotalInvested()
	futureValue := pe.SIPFutureValue(inputs.SIPAmount, inputs.AnnualReturnPercent, inputs.HorizonYears).
		Add(pe.LumpsumFutureValue(inputs.LumpsumAmount, inputs.AnnualReturnPercent, inputs.HorizonYears))

	return domain.ProjectionSummary{
		TotalInvested:    totalInvested,
		TotalFutureValue: futureValue,
		TotalGain:        futureValue.Sub(totalInvested),
	}
}

// Project runs the full projection and returns an immutable result bundle
// for consumers to render or export.
func (pe *ProjectionEngine) Project(inputs domain.InvestmentInputs) *domain.ProjectionResult {
	pe.Logger.Debugf("projecting sip=%s lumpsum=%s years=%d rate=%s%%",
		inputs.SIPAmount, inputs.LumpsumAmount, inputs.HorizonYears, inputs.AnnualReturnPercent)

	return &domain.ProjectionResult{
		Inputs:      inputs,
		Series:      pe.BuildYearlySeries(inputs),
		Summary:     pe.Summarize(inputs),
		GeneratedAt: time.Now(),
	}
}
