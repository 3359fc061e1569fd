package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// CSVFormatter exports the year-wise growth table (one row per year).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "SIP Value", "Lumpsum Value", "Total Value"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yp := range result.Series {
		row := []string{
			intToString(yp.Year),
			yp.SIPValue.StringFixed(2),
			yp.LumpsumValue.StringFixed(2),
			yp.TotalValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
