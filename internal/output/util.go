package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func intToString(i int) string { return strconv.Itoa(i) }

func hundredDecimal() decimal.Decimal { return decimal.NewFromInt(100) }
