package models

import "strings"

// Category is one of the fixed spending/earning categories of the ledger
type Category string

const (
	CategorySalary        Category = "Salary"
	CategoryFoodAndDrink  Category = "Food & Drink"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Categories lists every category in dropdown order. CategoryOther is last.
var Categories = []Category{
	CategorySalary,
	CategoryFoodAndDrink,
	CategoryTransport,
	CategoryBills,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// ParseCategory maps user input onto a Category, ignoring case and
// surrounding whitespace. Anything unrecognised becomes CategoryOther.
func ParseCategory(s string) Category {
	c, ok := LookupCategory(s)
	if !ok {
		return CategoryOther
	}
	return c
}

// LookupCategory is like ParseCategory but reports whether s matched.
func LookupCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
