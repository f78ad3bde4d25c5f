// Package report aggregates expense records into per-user and per-category
// totals and handles display formatting.
package report

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/wickant0902/expense-tracker/internal/models"
)

// DisplayDateFormat is how dates are rendered to the user (MM-DD-YYYY).
const DisplayDateFormat = "01-02-2006"

// Total is a display name paired with a summed amount.
type Total struct {
	Name   string
	Amount float64
}

// UserTotals sums amounts grouped by username, accumulated in first-seen
// order over the input sequence.
func UserTotals(records []models.ExpenseRecord) []Total {
	return totalsBy(records, func(r models.ExpenseRecord) string { return r.Username })
}

// CategoryTotals sums amounts grouped by category name, accumulated in
// first-seen order over the input sequence.
func CategoryTotals(records []models.ExpenseRecord) []Total {
	return totalsBy(records, func(r models.ExpenseRecord) string { return r.Category })
}

func totalsBy(records []models.ExpenseRecord, key func(models.ExpenseRecord) string) []Total {
	index := make(map[string]int)
	var totals []Total
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, Total{Name: k})
		}
		totals[i].Amount += r.Amount
	}
	return totals
}

// FormatDate re-renders a storage-format date (YYYY-MM-DD) for display
// (MM-DD-YYYY). Malformed input passes through unchanged rather than
// failing the whole report.
func FormatDate(date string) string {
	t, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateFormat)
}

// FormatAmount renders an amount with a currency prefix, thousands
// separators and two decimal places.
func FormatAmount(amount float64) string {
	return "$" + humanize.FormatFloat("#,###.##", amount)
}
