package menu

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// NotAvailable is shown in place of an average for a course with no items.
const NotAvailable = "N/A"

// Totals are the statistics derived from the current menu. They are never
// stored; Derive recomputes them from the items every time.
type Totals struct {
	TotalItems int `json:"totalItems"`
	// AveragePriceByCourse has an entry only for courses with items,
	// formatted to two decimal places.
	AveragePriceByCourse map[types.Course]string `json:"averagePriceByCourse"`
}

// Derive computes Totals over items.
func Derive(items []types.MenuItem) Totals {
	type acc struct {
		sum   decimal.Decimal
		count int64
	}
	sums := make(map[types.Course]*acc)
	for _, it := range items {
		a, ok := sums[it.Course]
		if !ok {
			a = &acc{}
			sums[it.Course] = a
		}
		a.sum = a.sum.Add(decimal.NewFromInt(it.Price))
		a.count++
	}

	averages := make(map[types.Course]string, len(sums))
	for course, a := range sums {
		avg := a.sum.Div(decimal.NewFromInt(a.count))
		averages[course] = avg.StringFixed(2)
	}

	return Totals{
		TotalItems:           len(items),
		AveragePriceByCourse: averages,
	}
}

// AveragePrice returns the formatted average for course and whether the
// course has any items.
func (t Totals) AveragePrice(course types.Course) (string, bool) {
	avg, ok := t.AveragePriceByCourse[course]
	return avg, ok
}

// AverageLabel returns the formatted average, or NotAvailable.
func (t Totals) AverageLabel(course types.Course) string {
	if avg, ok := t.AveragePrice(course); ok {
		return avg
	}
	return NotAvailable
}
