package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Veraticus/paycalc/internal/model"
	"github.com/Veraticus/paycalc/internal/payroll"
)

// WritePayslip renders a one-page A4 payslip PDF for the worker.
func WritePayslip(w io.Writer, worker model.Worker, summary payroll.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Payslip", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr("Name: "+worker.Name()))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr("Tax ID: "+worker.TaxID()))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Category: "+worker.Category().String())
	pdf.Ln(10)

	rows := []struct {
		label string
		value float64
	}{
		{"Gross salary", summary.GrossSalary},
		{"Social security", summary.SocialSecurity},
		{"Income tax", summary.IncomeTax},
		{"Net salary", summary.NetSalary},
	}
	for i, row := range rows {
		if i == len(rows)-1 {
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(60, 8, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, Money(row.value), "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return nil
}
