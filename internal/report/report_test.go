package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wickant0902/expense-tracker/internal/models"
)

func records() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		{Username: "alice", Category: "food", Amount: 10.00},
		{Username: "alice", Category: "transport", Amount: 5.50},
		{Username: "bob", Category: "food", Amount: 3.25},
	}
}

func TestUserTotals(t *testing.T) {
	totals := UserTotals(records())

	assert.Equal(t, []Total{
		{Name: "alice", Amount: 15.50},
		{Name: "bob", Amount: 3.25},
	}, totals)
}

func TestCategoryTotals(t *testing.T) {
	totals := CategoryTotals(records())

	assert.Equal(t, []Total{
		{Name: "food", Amount: 13.25},
		{Name: "transport", Amount: 5.50},
	}, totals)
}

func TestTotals_FirstSeenOrder(t *testing.T) {
	recs := []models.ExpenseRecord{
		{Username: "zoe", Amount: 1},
		{Username: "amy", Amount: 2},
		{Username: "zoe", Amount: 3},
	}

	totals := UserTotals(recs)
	assert.Equal(t, []Total{
		{Name: "zoe", Amount: 4},
		{Name: "amy", Amount: 2},
	}, totals)
}

func TestTotals_Empty(t *testing.T) {
	assert.Empty(t, UserTotals(nil))
	assert.Empty(t, CategoryTotals([]models.ExpenseRecord{}))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03-14-2024", FormatDate("2024-03-14"))
	assert.Equal(t, "12-01-1999", FormatDate("1999-12-01"))

	// Malformed dates pass through unchanged.
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "2024-13-99", FormatDate("2024-13-99"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$3.25", FormatAmount(3.25))
	assert.Equal(t, "$15.50", FormatAmount(15.5))
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$1,234.56", FormatAmount(1234.56))
	assert.Equal(t, "$1,000,000.00", FormatAmount(1e6))
}
