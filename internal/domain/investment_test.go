package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalInvested(t *testing.T) {
	tests := []struct {
		name     string
		inputs   InvestmentInputs
		expected string
	}{
		{
			name: "sip and lumpsum",
			inputs: InvestmentInputs{
				SIPAmount:     decimal.NewFromInt(5000),
				LumpsumAmount: decimal.NewFromInt(50000),
				HorizonYears:  10,
			},
			expected: "650000",
		},
		{
			name: "sip only",
			inputs: InvestmentInputs{
				SIPAmount:    decimal.NewFromInt(1000),
				HorizonYears: 5,
			},
			expected: "60000",
		},
		{
			name: "lumpsum only",
			inputs: InvestmentInputs{
				LumpsumAmount: decimal.NewFromInt(25000),
				HorizonYears:  3,
			},
			expected: "25000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, tt.inputs.TotalInvested().Equal(expected),
				"TotalInvested() = %s, want %s", tt.inputs.TotalInvested(), expected)
		})
	}
}

func TestFinalYear(t *testing.T) {
	r := &ProjectionResult{}
	assert.Equal(t, 0, r.FinalYear().Year)

	r.Series = []YearlyProjection{
		{Year: 1, TotalValue: decimal.NewFromInt(100)},
		{Year: 2, TotalValue: decimal.NewFromInt(210)},
	}
	final := r.FinalYear()
	assert.Equal(t, 2, final.Year)
	assert.True(t, final.TotalValue.Equal(decimal.NewFromInt(210)))
}
