package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wickant0902/expense-tracker/internal/models"
)

const expenseRecordColumns = `
	SELECT e.id, e.amount, e.expense_date, c.name, u.username,
	       COALESCE(e.description, ''), e.last_modified
	FROM expenses e
	JOIN categories c ON e.category_id = c.id
	JOIN users u ON e.user_id = u.id`

// CreateExpense inserts a new expense row for the owning user. The date is
// expected in storage format (YYYY-MM-DD); last_modified is set to now.
func (db *DB) CreateExpense(ctx context.Context, userID, categoryID int64, amount float64, date, description string) (*models.Expense, error) {
	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO expenses (user_id, category_id, amount, expense_date, description, last_modified)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, categoryID, amount, date, description, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return db.GetExpense(ctx, id)
}

// GetExpense retrieves a single expense by ID.
func (db *DB) GetExpense(ctx context.Context, id int64) (*models.Expense, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, user_id, category_id, amount, expense_date,
		       COALESCE(description, ''), last_modified
		FROM expenses WHERE id = ?`,
		id,
	)

	var e models.Expense
	if err := row.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Date, &e.Description, &e.LastModified); err != nil {
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// ListAllExpenses retrieves every expense joined with its user and category
// names, most recent expense date first. Feeds the combined report.
func (db *DB) ListAllExpenses(ctx context.Context) ([]models.ExpenseRecord, error) {
	rows, err := db.conn.QueryContext(ctx, expenseRecordColumns+`
	ORDER BY e.expense_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenseRecords(rows)
}

// ListUserExpenses retrieves one user's expenses filtered by period, most
// recent expense date first. The period maps to a computed date range
// passed as query parameters.
func (db *DB) ListUserExpenses(ctx context.Context, userID int64, period models.Period) ([]models.ExpenseRecord, error) {
	start, end, filtered := period.Bounds(time.Now())

	var rows *sql.Rows
	var err error
	if filtered {
		rows, err = db.conn.QueryContext(ctx, expenseRecordColumns+`
	WHERE e.user_id = ? AND e.expense_date BETWEEN ? AND ?
	ORDER BY e.expense_date DESC`,
			userID, start, end,
		)
	} else {
		rows, err = db.conn.QueryContext(ctx, expenseRecordColumns+`
	WHERE e.user_id = ?
	ORDER BY e.expense_date DESC`,
			userID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list user expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenseRecords(rows)
}

// UpdateExpense overwrites the three mutable fields and refreshes
// last_modified. Identity and ownership columns are never touched.
func (db *DB) UpdateExpense(ctx context.Context, id int64, amount float64, date, description string) error {
	_, err := db.conn.ExecContext(ctx, `
		UPDATE expenses
		SET amount = ?, expense_date = ?, description = ?, last_modified = ?
		WHERE id = ?`,
		amount, date, description, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense unconditionally.
func (db *DB) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := db.conn.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

func scanExpenseRecords(rows *sql.Rows) ([]models.ExpenseRecord, error) {
	var records []models.ExpenseRecord
	for rows.Next() {
		var r models.ExpenseRecord
		if err := rows.Scan(&r.ID, &r.Amount, &r.Date, &r.Category, &r.Username, &r.Description, &r.LastModified); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
