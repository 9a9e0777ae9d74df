package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/paycalc/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `name,tax_id,gross_salary,category
Maria Silva,123.456.789-00,3000.00,1
Carlos,111,"2000,00",1
Bia,222,1500,2
Dev Ltda,333,5000, 3
`

func TestLoad(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, Row{Name: "Maria Silva", TaxID: "123.456.789-00", GrossSalary: "3000.00", Category: "1"}, rows[0])
	assert.Equal(t, "2000,00", rows[1].GrossSalary)
}

func TestProcess(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	results, err := Process(rows)
	require.NoError(t, err)

	expected := []Result{
		{Name: "Maria Silva", TaxID: "123.456.789-00", Category: "Employee", GrossSalary: "3000.00", SocialSecurity: "330.00", IncomeTax: "25.50", NetSalary: "2644.50"},
		{Name: "Carlos", TaxID: "111", Category: "Employee", GrossSalary: "2000.00", SocialSecurity: "220.00", IncomeTax: "0.00", NetSalary: "1780.00"},
		{Name: "Bia", TaxID: "222", Category: "Intern", GrossSalary: "1500.00", SocialSecurity: "0.00", IncomeTax: "0.00", NetSalary: "1500.00"},
		{Name: "Dev Ltda", TaxID: "333", Category: "Contractor", GrossSalary: "5000.00", SocialSecurity: "0.00", IncomeTax: "250.00", NetSalary: "4750.00"},
	}
	assert.Equal(t, expected, results)
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		expectedErr error
		name        string
		rows        []Row
		rowNumber   string
	}{
		{
			name:        "empty batch",
			expectedErr: common.ErrEmptyBatch,
		},
		{
			name: "negative salary on second row",
			rows: []Row{
				{Name: "A", GrossSalary: "100", Category: "1"},
				{Name: "B", GrossSalary: "-1", Category: "1"},
			},
			expectedErr: common.ErrNegativeSalary,
			rowNumber:   "row 2",
		},
		{
			name:        "unknown category",
			rows:        []Row{{Name: "A", GrossSalary: "100", Category: "9"}},
			expectedErr: common.ErrInvalidOption,
			rowNumber:   "row 1",
		},
		{
			name:        "category name instead of code",
			rows:        []Row{{Name: "A", GrossSalary: "100", Category: "intern"}},
			expectedErr: common.ErrInvalidInput,
		},
		{
			name:        "bad salary",
			rows:        []Row{{Name: "A", GrossSalary: "ten", Category: "2"}},
			expectedErr: common.ErrInvalidSalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Process(tt.rows)
			assert.Nil(t, results)
			assert.ErrorIs(t, err, tt.expectedErr)
			if tt.rowNumber != "" {
				assert.ErrorIs(t, err, common.ErrInvalidRow)
				assert.ErrorContains(t, err, tt.rowNumber)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	results := []Result{
		{Name: "Maria Silva", TaxID: "123", Category: "Employee", GrossSalary: "3000.00", SocialSecurity: "330.00", IncomeTax: "25.50", NetSalary: "2644.50"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,tax_id,category,gross_salary,social_security,income_tax,net_salary", lines[0])
	assert.Equal(t, "Maria Silva,123,Employee,3000.00,330.00,25.50,2644.50", lines[1])
}
