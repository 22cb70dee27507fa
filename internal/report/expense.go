package report

import (
	"github.com/shopspring/decimal"

	"github.com/roadbook-dev/roadbook/internal/model"
)

// ExpenseTotals is the category breakdown of the expense collection.
// Other = Total - (Tolls + Meals + Overnights), so records carrying an
// unrecognized category land in the Other bucket rather than vanishing.
type ExpenseTotals struct {
	Tolls      decimal.Decimal
	Meals      decimal.Decimal
	Overnights decimal.Decimal
	Other      decimal.Decimal
	Total      decimal.Decimal
}

// TotalExpenses sums amounts per category. The four buckets always
// partition Total exactly.
func TotalExpenses(expenses []model.Expense) ExpenseTotals {
	var t ExpenseTotals
	for _, e := range expenses {
		t.Total = t.Total.Add(e.Amount)
		switch e.Category {
		case model.CategoryToll:
			t.Tolls = t.Tolls.Add(e.Amount)
		case model.CategoryMeal:
			t.Meals = t.Meals.Add(e.Amount)
		case model.CategoryOvernight:
			t.Overnights = t.Overnights.Add(e.Amount)
		}
	}
	t.Other = t.Total.Sub(t.Tolls).Sub(t.Meals).Sub(t.Overnights)
	return t
}
