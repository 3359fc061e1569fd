package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(5000)
	b := NewMoney(1250.50)

	assert.Equal(t, "6250.50", a.Add(b).String())
	assert.Equal(t, "3749.50", a.Sub(b).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.False(t, a.IsZero())
	assert.True(t, Zero().IsZero())
}

func TestMoneyAnnualMonthly(t *testing.T) {
	monthly := NewMoney(5000)
	assert.Equal(t, "60000.00", monthly.Annual().String())
	assert.Equal(t, "5000.00", monthly.Annual().Monthly().String())
}

func TestMoneyGrow(t *testing.T) {
	principal := NewMoney(50000)
	grown := principal.Grow(decimal.NewFromFloat(0.12), 10)

	// 50000 * 1.12^10
	assert.InDelta(t, 155292.41, grown.InexactFloat64(), 0.01)

	// zero periods leaves the amount untouched
	assert.True(t, principal.Grow(decimal.NewFromFloat(0.12), 0).Equal(principal))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoney(1234.567)
	assert.Equal(t, "1234.57", m.Round().String())
}

func TestMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56")
	assert.NoError(t, err)
	assert.Equal(t, "1234.56", m.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoneyFormat(t *testing.T) {
	m := NewMoney(650000)
	assert.Equal(t, "₹ 650000.00", m.Format("₹"))
	assert.Equal(t, "$ 650000.00", m.Format("$"))
}
