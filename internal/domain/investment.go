package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentInputs holds the four figures a projection is computed from:
// a monthly SIP contribution, a one-time lumpsum, the horizon in years and
// the expected effective annual return in percent units.
type InvestmentInputs struct {
	SIPAmount           decimal.Decimal `json:"sip_amount" yaml:"sip_amount"`
	LumpsumAmount       decimal.Decimal `json:"lumpsum_amount" yaml:"lumpsum_amount"`
	HorizonYears        int             `json:"horizon_years" yaml:"horizon_years"`
	AnnualReturnPercent decimal.Decimal `json:"annual_return_percent" yaml:"annual_return_percent"`
}

// TotalInvested returns the capital paid in over the full horizon:
// sip x 12 x years + lumpsum.
func (in InvestmentInputs) TotalInvested() decimal.Decimal {
	months := decimal.NewFromInt(12 * int64(in.HorizonYears))
	return in.SIPAmount.Mul(months).Add(in.LumpsumAmount)
}

// YearlyProjection is the partial future value of both contribution streams
// at the end of a single year. TotalValue is always SIPValue + LumpsumValue.
type YearlyProjection struct {
	Year         int             `json:"year" yaml:"year"`
	SIPValue     decimal.Decimal `json:"sip_value" yaml:"sip_value"`
	LumpsumValue decimal.Decimal `json:"lumpsum_value" yaml:"lumpsum_value"`
	TotalValue   decimal.Decimal `json:"total_value" yaml:"total_value"`
}

// ProjectionSummary holds the portfolio-level metrics derived from the
// inputs and the future-value functions.
type ProjectionSummary struct {
	TotalInvested    decimal.Decimal `json:"total_invested" yaml:"total_invested"`
	TotalFutureValue decimal.Decimal `json:"total_future_value" yaml:"total_future_value"`
	TotalGain        decimal.Decimal `json:"total_gain" yaml:"total_gain"`
}

// ProjectionResult is the complete, immutable output of one projection run.
// It is recomputed fresh from the inputs on every invocation and handed to
// whichever consumer needs it; there is no shared result store.
type ProjectionResult struct {
	Inputs      InvestmentInputs   `json:"inputs" yaml:"inputs"`
	Series      []YearlyProjection `json:"series" yaml:"series"`
	Summary     ProjectionSummary  `json:"summary" yaml:"summary"`
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
}

// FinalYear returns the last entry of the series. The zero value is returned
// for an empty series.
func (r *ProjectionResult) FinalYear() YearlyProjection {
	if len(r.Series) == 0 {
		return YearlyProjection{}
	}
	return r.Series[len(r.Series)-1]
}
