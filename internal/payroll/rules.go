// Package payroll computes withholdings and net salary for a worker.
package payroll

import (
	"fmt"

	"github.com/Veraticus/paycalc/internal/model"
)

// Fixed rates and thresholds.
const (
	EmployeeSocialSecurityRate = 0.11
	EmployeeIncomeTaxThreshold = 2500.0
	EmployeeIncomeTaxRate      = 0.15
	ContractorIncomeTaxRate    = 0.05
)

// Summary holds every figure computed for one worker. Values are unrounded.
type Summary struct {
	GrossSalary    float64
	SocialSecurity float64
	IncomeTax      float64
	NetSalary      float64
}

// rule is one row of the withholding table.
type rule struct {
	socialSecurity func(gross float64) float64
	incomeTax      func(gross float64) float64
}

var (
	employeeRule = rule{
		socialSecurity: func(gross float64) float64 {
			return gross * EmployeeSocialSecurityRate
		},
		incomeTax: func(gross float64) float64 {
			base := gross - gross*EmployeeSocialSecurityRate
			if base <= EmployeeIncomeTaxThreshold {
				return 0
			}
			return (base - EmployeeIncomeTaxThreshold) * EmployeeIncomeTaxRate
		},
	}

	internRule = rule{
		socialSecurity: exempt,
		incomeTax:      exempt,
	}

	contractorRule = rule{
		socialSecurity: exempt,
		incomeTax: func(gross float64) float64 {
			return gross * ContractorIncomeTaxRate
		},
	}
)

func exempt(float64) float64 { return 0 }

// ruleFor selects the table row for a category.
func ruleFor(c model.Category) rule {
	switch c {
	case model.CategoryEmployee:
		return employeeRule
	case model.CategoryIntern:
		return internRule
	case model.CategoryContractor:
		return contractorRule
	default:
		// model.NewWorker rejects unknown categories, so this only fires on a zero Worker.
		panic(fmt.Sprintf("payroll: no rule for %s", c))
	}
}

// SocialSecurity returns the social-security withholding for w.
func SocialSecurity(w model.Worker) float64 {
	return ruleFor(w.Category()).socialSecurity(w.GrossSalary())
}

// IncomeTax returns the income-tax withholding for w.
func IncomeTax(w model.Worker) float64 {
	return ruleFor(w.Category()).incomeTax(w.GrossSalary())
}

// NetSalary returns gross salary minus all withholdings that apply to w.
func NetSalary(w model.Worker) float64 {
	r := ruleFor(w.Category())
	gross := w.GrossSalary()
	return gross - r.socialSecurity(gross) - r.incomeTax(gross)
}

// Calculate computes every figure for w in one pass.
func Calculate(w model.Worker) Summary {
	r := ruleFor(w.Category())
	gross := w.GrossSalary()
	ss := r.socialSecurity(gross)
	it := r.incomeTax(gross)

	return Summary{
		GrossSalary:    gross,
		SocialSecurity: ss,
		IncomeTax:      it,
		NetSalary:      gross - ss - it,
	}
}
