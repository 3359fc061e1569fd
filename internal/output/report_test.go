package output_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipgo/investment-calculator/internal/calculation"
	"github.com/sipgo/investment-calculator/internal/domain"
	"github.com/sipgo/investment-calculator/internal/output"
)

func sampleResult() *domain.ProjectionResult {
	pe := calculation.NewProjectionEngine()
	return pe.Project(domain.InvestmentInputs{
		SIPAmount:           decimal.NewFromInt(5000),
		LumpsumAmount:       decimal.NewFromInt(50000),
		HorizonYears:        10,
		AnnualReturnPercent: decimal.NewFromInt(12),
	})
}

func TestConsoleFormatter(t *testing.T) {
	result := sampleResult()
	data, err := output.ConsoleFormatter{}.Format(result)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "INVESTMENT PROJECTION SUMMARY")
	assert.Contains(t, text, "Total Wealth Created")
	assert.Contains(t, text, "Year-wise Growth")

	// One table line per year: lines whose first field is the year index.
	var tableRows int
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if year, err := strconv.Atoi(fields[0]); err == nil && year >= 1 && year <= result.Inputs.HorizonYears {
			tableRows++
		}
	}
	assert.Equal(t, result.Inputs.HorizonYears, tableRows)
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult()
	data, err := output.CSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11, "header plus one row per year")

	assert.Equal(t, []string{"Year", "SIP Value", "Lumpsum Value", "Total Value"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "10", records[10][0])
	assert.Equal(t, result.FinalYear().TotalValue.StringFixed(2), records[10][3])
}

func TestJSONFormatter(t *testing.T) {
	result := sampleResult()
	data, err := output.JSONFormatter{}.Format(result)
	require.NoError(t, err)

	var decoded domain.ProjectionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Series, 10)
	assert.True(t, decoded.Summary.TotalInvested.Equal(decimal.NewFromInt(650000)))
}

func TestPDFFormatter(t *testing.T) {
	data, err := output.PDFFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := output.GenerateReport(sampleResult(), "docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "xlsx")
}

func TestGenerateReport_WritesFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	files, err := output.GenerateReport(sampleResult(), "csv")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasPrefix(files[0], "investment_report_"))
	assert.True(t, strings.HasSuffix(files[0], ".csv"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		output.ContentType(output.ExcelFormatter{}))
	assert.Equal(t, "application/pdf", output.ContentType(output.PDFFormatter{}))
	assert.Equal(t, "text/csv", output.ContentType(output.CSVFormatter{}))
}
