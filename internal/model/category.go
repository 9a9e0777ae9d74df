// Package model defines the core domain models used throughout the application.
package model

import (
	"strconv"

	"github.com/Veraticus/paycalc/internal/common"
)

// Category classifies a worker and selects the withholding rules that apply.
type Category int

// Category constants. The numeric values are the menu codes shown to the user.
const (
	// CategoryEmployee is a salaried employee subject to both withholdings.
	CategoryEmployee Category = iota + 1
	// CategoryIntern is exempt from both withholdings.
	CategoryIntern
	// CategoryContractor pays a flat income tax and no social security.
	CategoryContractor
)

// Categories lists every category in menu order.
var Categories = []Category{CategoryEmployee, CategoryIntern, CategoryContractor}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= CategoryEmployee && c <= CategoryContractor
}

// Code returns the menu code for the category.
func (c Category) Code() int {
	return int(c)
}

func (c Category) String() string {
	switch c {
	case CategoryEmployee:
		return "Employee"
	case CategoryIntern:
		return "Intern"
	case CategoryContractor:
		return "Contractor"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// ParseCategoryCode converts a menu code into a Category.
// Non-numeric input yields ErrInvalidInput; numbers outside the menu yield ErrInvalidOption.
func ParseCategoryCode(input string) (Category, error) {
	code, err := strconv.Atoi(input)
	if err != nil {
		return 0, common.ErrInvalidInput
	}

	c := Category(code)
	if !c.Valid() {
		return 0, common.ErrInvalidOption
	}
	return c, nil
}
