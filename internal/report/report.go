package report

import (
	"fmt"
	"io"

	"github.com/Veraticus/paycalc/internal/model"
	"github.com/Veraticus/paycalc/internal/payroll"
)

const (
	headerRule = "---------- SUMMARY ----------"
	footerRule = "-----------------------------"
)

// Render writes the fixed-layout summary block for a worker.
func Render(w io.Writer, worker model.Worker, summary payroll.Summary) error {
	lines := []string{
		headerRule,
		"Name: " + worker.Name(),
		"Tax ID: " + worker.TaxID(),
		"Gross salary: " + Money(summary.GrossSalary),
		"Social security: " + Money(summary.SocialSecurity),
		"Income tax: " + Money(summary.IncomeTax),
		"Net salary: " + Money(summary.NetSalary),
		footerRule,
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// RenderDetail writes the single line with both withholdings.
func RenderDetail(w io.Writer, summary payroll.Summary) error {
	if _, err := fmt.Fprintf(w, "Detail: social security=%s, income tax=%s\n",
		Money(summary.SocialSecurity), Money(summary.IncomeTax)); err != nil {
		return fmt.Errorf("failed to write detail line: %w", err)
	}
	return nil
}
