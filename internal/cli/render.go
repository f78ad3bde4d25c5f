package cli

import (
	"fmt"
	"strings"

	"github.com/wickant0902/expense-tracker/internal/models"
	"github.com/wickant0902/expense-tracker/internal/report"
)

const expenseRowFormat = "%-15s %-12s %-15s %-20s %-40s %-20s\n"

// renderExpenseTable prints expense records as a fixed-width text table,
// with dates and amounts re-rendered for display.
func (a *App) renderExpenseTable(records []models.ExpenseRecord) {
	fmt.Fprintf(a.out, expenseRowFormat,
		"Date", "Amount", "User", "Category", "Description", "Last Modified")
	fmt.Fprintln(a.out, strings.Repeat("-", 127))
	for _, r := range records {
		fmt.Fprintf(a.out, expenseRowFormat,
			report.FormatDate(r.Date),
			report.FormatAmount(r.Amount),
			r.Username,
			r.Category,
			r.Description,
			r.LastModified.Format("2006-01-02 15:04:05"),
		)
	}
}

func (a *App) renderUserTotals(records []models.ExpenseRecord) {
	fmt.Fprintln(a.out, "\nTotals by user:")
	for _, t := range report.UserTotals(records) {
		fmt.Fprintf(a.out, "  %-20s %s\n", t.Name, report.FormatAmount(t.Amount))
	}
}

func (a *App) renderCategoryTotals(records []models.ExpenseRecord) {
	fmt.Fprintln(a.out, "\nTotals by category:")
	for _, t := range report.CategoryTotals(records) {
		fmt.Fprintf(a.out, "  %-20s %s\n", t.Name, report.FormatAmount(t.Amount))
	}
}
