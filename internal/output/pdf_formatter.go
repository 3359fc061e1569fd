package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// PDFFormatter renders the same logical report sections as the spreadsheet
// in a printable PDF. Amounts are written without the currency glyph since
// the core PDF fonts only cover cp1252.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }
func (p PDFFormatter) Ext() string  { return "pdf" }

func (p PDFFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Investment Summary Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", result.GeneratedAt.Format("02-January-2006")))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Input Parameters")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Monthly SIP Amount: %s", result.Inputs.SIPAmount.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Lumpsum Amount: %s", result.Inputs.LumpsumAmount.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Investment Period (Years): %d", result.Inputs.HorizonYears))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Expected Annual Return: %s%%", result.Inputs.AnnualReturnPercent.StringFixed(2)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Results Summary")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Investment: %s", result.Summary.TotalInvested.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Returns: %s", result.Summary.TotalGain.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Wealth Created: %s", result.Summary.TotalFutureValue.StringFixed(2)))
	pdf.Ln(8)

	// Year-wise table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(25, 6, "Year", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "SIP Value", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Lumpsum Value", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Total Value", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, yp := range result.Series {
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", yp.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, yp.SIPValue.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, yp.LumpsumValue.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, yp.TotalValue.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
