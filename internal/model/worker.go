package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/paycalc/internal/common"
)

// Worker is the record a payroll summary is computed for.
// It is immutable once built; use WithGrossSalary to derive a changed copy.
type Worker struct {
	name        string
	taxID       string
	grossSalary float64
	category    Category
}

// NewWorker builds a validated worker record.
func NewWorker(name, taxID string, grossSalary float64, category Category) (Worker, error) {
	if err := validateGrossSalary(grossSalary); err != nil {
		return Worker{}, err
	}
	if !category.Valid() {
		return Worker{}, fmt.Errorf("%w: %d", common.ErrInvalidOption, int(category))
	}

	return Worker{
		name:        name,
		taxID:       taxID,
		grossSalary: grossSalary,
		category:    category,
	}, nil
}

// Name returns the worker's name.
func (w Worker) Name() string { return w.name }

// TaxID returns the worker's tax identifier.
func (w Worker) TaxID() string { return w.taxID }

// GrossSalary returns the pre-deduction pay amount.
func (w Worker) GrossSalary() float64 { return w.grossSalary }

// Category returns the worker's category.
func (w Worker) Category() Category { return w.category }

// WithGrossSalary returns a copy of w with a new gross salary, validated the same way as NewWorker.
func (w Worker) WithGrossSalary(grossSalary float64) (Worker, error) {
	if err := validateGrossSalary(grossSalary); err != nil {
		return w, err
	}
	w.grossSalary = grossSalary
	return w, nil
}

// ParseSalary parses a salary typed by the user. Both "," and "." are accepted
// as the decimal separator.
func ParseSalary(input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
	if err != nil {
		return 0, common.ErrInvalidSalary
	}
	if err := validateGrossSalary(value); err != nil {
		return 0, err
	}
	return value, nil
}

func validateGrossSalary(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return common.ErrInvalidSalary
	}
	if value < 0 {
		return common.ErrNegativeSalary
	}
	return nil
}
