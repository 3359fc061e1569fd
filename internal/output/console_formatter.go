package output

import (
	"bytes"
	"fmt"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Monthly SIP Amount:        %s\n", FormatCurrency(result.Inputs.SIPAmount))
	fmt.Fprintf(&buf, "Lumpsum Amount:            %s\n", FormatCurrency(result.Inputs.LumpsumAmount))
	fmt.Fprintf(&buf, "Investment Period (Years): %d\n", result.Inputs.HorizonYears)
	fmt.Fprintf(&buf, "Expected Annual Return:    %s\n", FormatPercentage(result.Inputs.AnnualReturnPercent))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total Investment:          %s\n", FormatCurrency(result.Summary.TotalInvested))
	fmt.Fprintf(&buf, "Total Returns:             %s\n", FormatCurrency(result.Summary.TotalGain))
	fmt.Fprintf(&buf, "Total Wealth Created:      %s\n", FormatCurrency(result.Summary.TotalFutureValue))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Year-wise Growth")
	fmt.Fprintf(&buf, "%-6s %18s %18s %18s\n", "Year", "SIP Value", "Lumpsum Value", "Total Value")
	for _, yp := range result.Series {
		fmt.Fprintf(&buf, "%-6d %18s %18s %18s\n",
			yp.Year,
			FormatCurrency(yp.SIPValue),
			FormatCurrency(yp.LumpsumValue),
			FormatCurrency(yp.TotalValue),
		)
	}
	return buf.Bytes(), nil
}
