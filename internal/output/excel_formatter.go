package output

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// ExcelFormatter produces the downloadable spreadsheet report: input
// parameters, results summary, the year-wise growth table and an embedded
// line chart plotting the three value series against year. The workbook is
// built entirely in memory; on any error no bytes are returned.
type ExcelFormatter struct{}

func (e ExcelFormatter) Name() string { return "xlsx" }
func (e ExcelFormatter) Ext() string  { return "xlsx" }

const summarySheet = "Summary"

// Fixed sheet layout (1-based rows).
const (
	titleRow        = 1
	generatedRow    = 2
	inputHeaderRow  = 4
	inputStartRow   = 5 // 4 input rows
	resultHeaderRow = 10
	resultStartRow  = 11 // 3 result rows
	tableTitleRow   = 15
	tableHeaderRow  = 16
	tableStartRow   = 17
	chartAnchorCell = "F16"
)

type reportStyles struct {
	title    int
	header   int
	currency int
	normal   int
	number   int
	percent  int
}

func (e ExcelFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	styles, err := newReportStyles(f)
	if err != nil {
		return nil, err
	}

	if err := e.writeHeader(f, styles, result); err != nil {
		return nil, err
	}
	if err := e.writeInputs(f, styles, result); err != nil {
		return nil, err
	}
	if err := e.writeSummary(f, styles, result); err != nil {
		return nil, err
	}
	if err := e.writeYearTable(f, styles, result); err != nil {
		return nil, err
	}
	if err := e.addGrowthChart(f, len(result.Series)); err != nil {
		return nil, err
	}

	tableEnd := tableStartRow + len(result.Series) - 1
	if err := f.AutoFilter(summarySheet, fmt.Sprintf("A%d:D%d", tableHeaderRow, tableEnd), nil); err != nil {
		return nil, err
	}
	if err := f.ProtectSheet(summarySheet, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newReportStyles(f *excelize.File) (*reportStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "000000"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E2EFDA"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"22C55E"}},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	currencyFmt := CurrencySymbol + " #,##0.00"
	currency, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &currencyFmt,
		Border:       border,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	normal, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	number, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	percentFmt := "0.00%"
	percent, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFmt,
		Border:       border,
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	return &reportStyles{
		title:    title,
		header:   header,
		currency: currency,
		normal:   normal,
		number:   number,
		percent:  percent,
	}, nil
}

func (e ExcelFormatter) writeHeader(f *excelize.File, styles *reportStyles, result *domain.ProjectionResult) error {
	for col, width := range map[string]float64{"A": 30, "B": 25, "D": 20} {
		if err := f.SetColWidth(summarySheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.MergeCell(summarySheet, fmt.Sprintf("A%d", titleRow), fmt.Sprintf("D%d", titleRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", titleRow), "Investment Summary Report"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", titleRow), fmt.Sprintf("D%d", titleRow), styles.title); err != nil {
		return err
	}

	generatedAt := result.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	if err := f.MergeCell(summarySheet, fmt.Sprintf("A%d", generatedRow), fmt.Sprintf("D%d", generatedRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", generatedRow),
		"Generated on: "+generatedAt.Format("02-January-2006")); err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", generatedRow), fmt.Sprintf("D%d", generatedRow), styles.normal)
}

func (e ExcelFormatter) writeInputs(f *excelize.File, styles *reportStyles, result *domain.ProjectionResult) error {
	if err := e.writeSectionHeader(f, styles, inputHeaderRow, "Input Parameters"); err != nil {
		return err
	}

	// The rate is stored as a fraction so the percent number format renders it.
	rateFraction := result.Inputs.AnnualReturnPercent.Div(hundredDecimal()).InexactFloat64()
	rows := []struct {
		label string
		value interface{}
		style int
	}{
		{"Monthly SIP Amount", result.Inputs.SIPAmount.InexactFloat64(), styles.currency},
		{"Lumpsum Amount", result.Inputs.LumpsumAmount.InexactFloat64(), styles.currency},
		{"Investment Period (Years)", result.Inputs.HorizonYears, styles.number},
		{"Expected Annual Return (%)", rateFraction, styles.percent},
	}

	for idx, row := range rows {
		r := inputStartRow + idx
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), styles.normal); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), row.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", r), fmt.Sprintf("B%d", r), row.style); err != nil {
			return err
		}
	}
	return nil
}

func (e ExcelFormatter) writeSummary(f *excelize.File, styles *reportStyles, result *domain.ProjectionResult) error {
	if err := e.writeSectionHeader(f, styles, resultHeaderRow, "Results Summary"); err != nil {
		return err
	}

	// Stored values are the raw numerics; the currency format is display-only,
	// so "Total Wealth Created" round-trips without truncation.
	rows := []struct {
		label string
		value float64
	}{
		{"Total Investment", result.Summary.TotalInvested.InexactFloat64()},
		{"Total Returns", result.Summary.TotalGain.InexactFloat64()},
		{"Total Wealth Created", result.Summary.TotalFutureValue.InexactFloat64()},
	}

	for idx, row := range rows {
		r := resultStartRow + idx
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row.label); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), styles.normal); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), row.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", r), fmt.Sprintf("B%d", r), styles.currency); err != nil {
			return err
		}
	}
	return nil
}

func (e ExcelFormatter) writeYearTable(f *excelize.File, styles *reportStyles, result *domain.ProjectionResult) error {
	if err := f.MergeCell(summarySheet, fmt.Sprintf("A%d", tableTitleRow), fmt.Sprintf("D%d", tableTitleRow)); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", tableTitleRow), "Year-wise Growth"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", tableTitleRow), fmt.Sprintf("D%d", tableTitleRow), styles.header); err != nil {
		return err
	}

	headers := []string{"Year", "SIP Value", "Lumpsum Value", "Total Value"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, tableHeaderRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for idx, yp := range result.Series {
		r := tableStartRow + idx
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), yp.Year); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), yp.SIPValue.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("C%d", r), yp.LumpsumValue.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("D%d", r), yp.TotalValue.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", r), fmt.Sprintf("A%d", r), styles.number); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, fmt.Sprintf("B%d", r), fmt.Sprintf("D%d", r), styles.currency); err != nil {
			return err
		}
	}
	return nil
}

func (e ExcelFormatter) writeSectionHeader(f *excelize.File, styles *reportStyles, row int, label string) error {
	if err := f.MergeCell(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row)); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), label); err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.header)
}

func (e ExcelFormatter) addGrowthChart(f *excelize.File, seriesLen int) error {
	if seriesLen == 0 {
		return nil
	}

	firstRow := tableStartRow
	lastRow := tableStartRow + seriesLen - 1
	categories := fmt.Sprintf("%s!$A$%d:$A$%d", summarySheet, firstRow, lastRow)
	valueRange := func(col string) string {
		return fmt.Sprintf("%s!$%s$%d:$%s$%d", summarySheet, col, firstRow, col, lastRow)
	}

	yAxisFmt := CurrencySymbol + " #,##0"
	return f.AddChart(summarySheet, chartAnchorCell, &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       "SIP Value",
				Categories: categories,
				Values:     valueRange("B"),
				Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"22C55E"}},
				Line:       excelize.ChartLine{Width: 2.5},
			},
			{
				Name:       "Lumpsum Value",
				Categories: categories,
				Values:     valueRange("C"),
				Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
				Line:       excelize.ChartLine{Width: 2.5},
			},
			{
				Name:       "Total Value",
				Categories: categories,
				Values:     valueRange("D"),
				Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F59E0B"}},
				Line:       excelize.ChartLine{Width: 3},
			},
		},
		Title: []excelize.RichTextRun{
			{Text: "Investment Growth Over Time", Font: &excelize.Font{Bold: true, Size: 14}},
		},
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: "Years", Font: &excelize.Font{Size: 12}}},
		},
		YAxis: excelize.ChartAxis{
			Title:  []excelize.RichTextRun{{Text: "Value (" + CurrencySymbol + ")", Font: &excelize.Font{Size: 12}}},
			NumFmt: excelize.ChartNumFmt{CustomNumFmt: yAxisFmt},
		},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 480},
	})
}
