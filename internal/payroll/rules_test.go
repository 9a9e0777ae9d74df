package payroll

import (
	"testing"

	"github.com/Veraticus/paycalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func newWorker(t *testing.T, gross float64, c model.Category) model.Worker {
	t.Helper()
	w, err := model.NewWorker("Test Worker", "000.000.000-00", gross, c)
	require.NoError(t, err)
	return w
}

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		category       model.Category
		gross          float64
		socialSecurity float64
		incomeTax      float64
		net            float64
	}{
		{
			name:           "employee above threshold",
			category:       model.CategoryEmployee,
			gross:          3000,
			socialSecurity: 330,
			incomeTax:      25.50,
			net:            2644.50,
		},
		{
			name:           "employee below threshold",
			category:       model.CategoryEmployee,
			gross:          2000,
			socialSecurity: 220,
			incomeTax:      0,
			net:            1780,
		},
		{
			name:     "intern is exempt",
			category: model.CategoryIntern,
			gross:    1500,
			net:      1500,
		},
		{
			name:      "contractor flat rate",
			category:  model.CategoryContractor,
			gross:     5000,
			incomeTax: 250,
			net:       4750,
		},
		{
			name:     "zero salary employee",
			category: model.CategoryEmployee,
			gross:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorker(t, tt.gross, tt.category)
			s := Calculate(w)

			assert.InDelta(t, tt.gross, s.GrossSalary, delta)
			assert.InDelta(t, tt.socialSecurity, s.SocialSecurity, delta)
			assert.InDelta(t, tt.incomeTax, s.IncomeTax, delta)
			assert.InDelta(t, tt.net, s.NetSalary, delta)

			assert.InDelta(t, tt.socialSecurity, SocialSecurity(w), delta)
			assert.InDelta(t, tt.incomeTax, IncomeTax(w), delta)
			assert.InDelta(t, tt.net, NetSalary(w), delta)
		})
	}
}

func TestEmployeeRule_Properties(t *testing.T) {
	for _, gross := range []float64{0, 100, 1234.56, 2800, 2810, 3000, 10000, 123456.78} {
		w := newWorker(t, gross, model.CategoryEmployee)
		ss := SocialSecurity(w)
		it := IncomeTax(w)

		assert.InDelta(t, gross*0.11, ss, delta)
		if gross*0.89 <= 2500 {
			assert.Zero(t, it, "gross %.2f should be below the income-tax threshold", gross)
		} else {
			assert.InDelta(t, (gross*0.89-2500)*0.15, it, 1e-6)
		}
		assert.InDelta(t, gross-ss-it, NetSalary(w), delta)
	}
}

func TestEmployeeRule_ThresholdBoundary(t *testing.T) {
	// 2500 / 0.89 puts the taxable base right at the threshold.
	w := newWorker(t, 2500/0.89, model.CategoryEmployee)
	assert.InDelta(t, 0, IncomeTax(w), 1e-9)

	w = newWorker(t, 2900, model.CategoryEmployee)
	assert.InDelta(t, (2900*0.89-2500)*0.15, IncomeTax(w), 1e-9)
}

func TestInternAndContractorRules_Properties(t *testing.T) {
	for _, gross := range []float64{0, 0.01, 999.99, 5000, 1e6} {
		intern := newWorker(t, gross, model.CategoryIntern)
		assert.Zero(t, SocialSecurity(intern))
		assert.Zero(t, IncomeTax(intern))
		assert.Equal(t, gross, NetSalary(intern))

		contractor := newWorker(t, gross, model.CategoryContractor)
		assert.Zero(t, SocialSecurity(contractor))
		assert.InDelta(t, gross*0.05, IncomeTax(contractor), delta)
		assert.InDelta(t, gross-IncomeTax(contractor), NetSalary(contractor), delta)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	for _, c := range model.Categories {
		w := newWorker(t, 4321.09, c)
		first := Calculate(w)
		second := Calculate(w)
		assert.Equal(t, first, second)
		assert.Equal(t, SocialSecurity(w), SocialSecurity(w))
		assert.Equal(t, IncomeTax(w), IncomeTax(w))
		assert.Equal(t, NetSalary(w), NetSalary(w))
	}
}

func TestCalculate_FollowsSalaryChange(t *testing.T) {
	w := newWorker(t, 2000, model.CategoryEmployee)
	assert.Zero(t, IncomeTax(w))

	raised, err := w.WithGrossSalary(3000)
	require.NoError(t, err)
	assert.InDelta(t, 25.50, Calculate(raised).IncomeTax, delta)
	assert.Zero(t, IncomeTax(w))
}

func TestCalculate_PanicsOnZeroWorker(t *testing.T) {
	assert.Panics(t, func() {
		Calculate(model.Worker{})
	})
}
