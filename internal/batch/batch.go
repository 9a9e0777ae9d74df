// Package batch runs the payroll calculation over a CSV file of workers.
package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/Veraticus/paycalc/internal/common"
	"github.com/Veraticus/paycalc/internal/model"
	"github.com/Veraticus/paycalc/internal/payroll"
	"github.com/Veraticus/paycalc/internal/report"
)

// Row is one worker line of the input file. Values are kept as typed so they go
// through the same parsers as interactive answers.
type Row struct {
	Name        string `csv:"name"`
	TaxID       string `csv:"tax_id"`
	GrossSalary string `csv:"gross_salary"`
	Category    string `csv:"category"`
}

// Result is one line of the output file.
type Result struct {
	Name           string `csv:"name"`
	TaxID          string `csv:"tax_id"`
	Category       string `csv:"category"`
	GrossSalary    string `csv:"gross_salary"`
	SocialSecurity string `csv:"social_security"`
	IncomeTax      string `csv:"income_tax"`
	NetSalary      string `csv:"net_salary"`
}

// Load reads worker rows from CSV with a name,tax_id,gross_salary,category header.
func Load(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return rows, nil
}

// Process calculates every row in order and stops at the first invalid one.
func Process(rows []Row) ([]Result, error) {
	if len(rows) == 0 {
		return nil, common.ErrEmptyBatch
	}

	results := make([]Result, 0, len(rows))
	for i, row := range rows {
		worker, err := row.worker()
		if err != nil {
			// Row numbers are 1-based and exclude the header.
			return nil, fmt.Errorf("%w %d: %w", common.ErrInvalidRow, i+1, err)
		}

		summary := payroll.Calculate(worker)
		results = append(results, Result{
			Name:           worker.Name(),
			TaxID:          worker.TaxID(),
			Category:       worker.Category().String(),
			GrossSalary:    report.Amount(summary.GrossSalary),
			SocialSecurity: report.Amount(summary.SocialSecurity),
			IncomeTax:      report.Amount(summary.IncomeTax),
			NetSalary:      report.Amount(summary.NetSalary),
		})
	}
	return results, nil
}

// Write encodes results as CSV with a header line.
func Write(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("failed to write batch results: %w", err)
	}
	return nil
}

func (r Row) worker() (model.Worker, error) {
	salary, err := model.ParseSalary(strings.TrimSpace(r.GrossSalary))
	if err != nil {
		return model.Worker{}, err
	}
	category, err := model.ParseCategoryCode(strings.TrimSpace(r.Category))
	if err != nil {
		return model.Worker{}, err
	}
	return model.NewWorker(r.Name, r.TaxID, salary, category)
}
