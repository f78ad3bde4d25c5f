// Package cli implements the interactive menu loop for the expense tracker.
// Input and output are injected so the whole flow is testable without a
// terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/wickant0902/expense-tracker/internal/auth"
	"github.com/wickant0902/expense-tracker/internal/models"
	"github.com/wickant0902/expense-tracker/internal/report"
	"github.com/wickant0902/expense-tracker/internal/storage"
)

// App drives the interactive session against the persistence layer.
type App struct {
	store *storage.DB
	in    *bufio.Scanner
	stdin io.Reader
	out   io.Writer
	log   *slog.Logger
}

// New creates an App reading from stdin and writing to out.
func New(store *storage.DB, stdin io.Reader, out io.Writer) *App {
	return &App{
		store: store,
		in:    bufio.NewScanner(stdin),
		stdin: stdin,
		out:   out,
		log:   slog.Default(),
	}
}

// Run executes the main menu loop until the user exits or input closes.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, "\n=== Main Menu ===")
		fmt.Fprintln(a.out, "1. Create an account")
		fmt.Fprintln(a.out, "2. Log in")
		fmt.Fprintln(a.out, "3. View Combined Expenses Report")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := a.promptLine("Enter choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.createAccount(ctx)
		case "2":
			var user *models.User
			if user, err = a.login(ctx); err == nil && user != nil {
				err = a.userMenu(ctx, user)
			}
		case "3":
			err = a.combinedReport(ctx)
		case "4":
			fmt.Fprintln(a.out, "Exiting program.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) createAccount(ctx context.Context) error {
	username, err := a.promptLine("Enter a new username: ")
	if err != nil {
		return err
	}
	password, err := a.readPassword("Enter a password: ")
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = a.store.CreateUser(ctx, username, hash)
	switch {
	case errors.Is(err, models.ErrDuplicateUsername):
		fmt.Fprintln(a.out, "Account already exists. Please log in.")
	case errors.Is(err, models.ErrEmptyUsername):
		fmt.Fprintln(a.out, "Username cannot be empty.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "Account created successfully.")
	}
	return nil
}

func (a *App) login(ctx context.Context) (*models.User, error) {
	username, err := a.promptLine("Username: ")
	if err != nil {
		return nil, err
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		return nil, err
	}

	user, err := a.store.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil, nil
	}
	a.log.Debug("user logged in", "user_id", user.ID)
	fmt.Fprintln(a.out, "Login successful.")
	return user, nil
}

func (a *App) userMenu(ctx context.Context, user *models.User) error {
	for {
		fmt.Fprintln(a.out, "\n=== User Menu ===")
		fmt.Fprintln(a.out, "1. Add Expense")
		fmt.Fprintln(a.out, "2. View My Expenses")
		fmt.Fprintln(a.out, "3. Manage Categories")
		fmt.Fprintln(a.out, "4. Manage My Expenses")
		fmt.Fprintln(a.out, "5. Logout")

		choice, err := a.promptLine("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.addExpense(ctx, user)
		case "2":
			err = a.viewMyExpenses(ctx, user)
		case "3":
			err = a.manageCategories(ctx)
		case "4":
			err = a.manageMyExpenses(ctx, user)
		case "5":
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) addExpense(ctx context.Context, user *models.User) error {
	categories, err := a.store.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories found. Please add a category first.")
		return nil
	}

	fmt.Fprintln(a.out, "Select a category for the expense:")
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Name)
	}
	idx, err := a.promptIndex("Choice: ", len(categories), false)
	if err != nil {
		return err
	}
	category := categories[idx-1]

	amount, err := a.promptAmount("Amount: ")
	if err != nil {
		return err
	}
	date, err := a.promptDate("Date (MM-DD-YYYY): ")
	if err != nil {
		return err
	}
	description, err := a.promptLine("Description: ")
	if err != nil {
		return err
	}

	if _, err := a.store.CreateExpense(ctx, user.ID, category.ID, amount, date, description); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Expense added successfully.")
	return nil
}

func (a *App) viewMyExpenses(ctx context.Context, user *models.User) error {
	fmt.Fprintln(a.out, "\n=== View My Expenses ===")
	fmt.Fprintln(a.out, "1. Daily")
	fmt.Fprintln(a.out, "2. Weekly")
	fmt.Fprintln(a.out, "3. Monthly")
	fmt.Fprintln(a.out, "4. Yearly")
	fmt.Fprintln(a.out, "5. All")

	choice, err := a.promptLine("Choose period: ")
	if err != nil {
		return err
	}

	period := models.PeriodAll
	switch choice {
	case "1":
		period = models.PeriodDaily
	case "2":
		period = models.PeriodWeekly
	case "3":
		period = models.PeriodMonthly
	case "4":
		period = models.PeriodYearly
	}

	expenses, err := a.store.ListUserExpenses(ctx, user.ID, period)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses found for this period.")
		return nil
	}

	a.renderExpenseTable(expenses)
	a.renderCategoryTotals(expenses)
	return nil
}

func (a *App) manageCategories(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n=== Manage Categories ===")
	fmt.Fprintln(a.out, "1. Add Category")
	fmt.Fprintln(a.out, "2. Update Category")
	fmt.Fprintln(a.out, "3. Delete Category")

	choice, err := a.promptLine("Enter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.addCategory(ctx)
	case "2":
		return a.renameCategory(ctx)
	case "3":
		return a.deleteCategory(ctx)
	default:
		fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (a *App) addCategory(ctx context.Context) error {
	name, err := a.promptLine("Enter the name of the new category: ")
	if err != nil {
		return err
	}

	_, err = a.store.CreateCategory(ctx, name)
	switch {
	case errors.Is(err, models.ErrDuplicateCategory):
		fmt.Fprintln(a.out, "Category already exists.")
	case errors.Is(err, models.ErrEmptyCategoryName):
		fmt.Fprintln(a.out, "Category name cannot be empty.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "Category added successfully.")
	}
	return nil
}

func (a *App) renameCategory(ctx context.Context) error {
	category, err := a.selectCategory(ctx, "Select the number of the category to update: ")
	if err != nil || category == nil {
		return err
	}

	newName, err := a.promptLine("Enter the new name for the category: ")
	if err != nil {
		return err
	}

	err = a.store.RenameCategory(ctx, category.ID, newName)
	switch {
	case errors.Is(err, models.ErrDuplicateCategory):
		fmt.Fprintln(a.out, "A category with that name already exists.")
	case errors.Is(err, models.ErrEmptyCategoryName):
		fmt.Fprintln(a.out, "Category name cannot be empty.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "Category updated successfully.")
	}
	return nil
}

func (a *App) deleteCategory(ctx context.Context) error {
	category, err := a.selectCategory(ctx, "Select the number of the category to delete: ")
	if err != nil || category == nil {
		return err
	}

	err = a.store.DeleteCategory(ctx, category.ID)
	switch {
	case errors.Is(err, models.ErrCategoryInUse):
		fmt.Fprintln(a.out, "Category cannot be deleted because it has linked expenses.")
	case err != nil:
		return err
	default:
		fmt.Fprintln(a.out, "Category deleted successfully.")
	}
	return nil
}

// selectCategory lists categories and reads a selection. Returns (nil, nil)
// when there is nothing to select.
func (a *App) selectCategory(ctx context.Context, label string) (*models.Category, error) {
	categories, err := a.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories available.")
		return nil, nil
	}

	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Name)
	}
	idx, err := a.promptIndex(label, len(categories), false)
	if err != nil {
		return nil, err
	}
	return &categories[idx-1], nil
}

func (a *App) manageMyExpenses(ctx context.Context, user *models.User) error {
	expenses, err := a.store.ListUserExpenses(ctx, user.ID, models.PeriodAll)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "You have no expenses logged.")
		return nil
	}

	fmt.Fprintln(a.out, "Select the expense you wish to manage:")
	for i, e := range expenses {
		fmt.Fprintf(a.out, "%d. Date: %s, Amount: %s, Description: %s\n",
			i+1, report.FormatDate(e.Date), report.FormatAmount(e.Amount), e.Description)
	}

	idx, err := a.promptIndex("Enter the number of the expense to manage or 0 to go back: ", len(expenses), true)
	if err != nil {
		return err
	}
	if idx == 0 {
		return nil
	}
	selected := expenses[idx-1]

	fmt.Fprintln(a.out, "1. Update Expense")
	fmt.Fprintln(a.out, "2. Delete Expense")
	action, err := a.promptLine("Enter choice: ")
	if err != nil {
		return err
	}

	switch action {
	case "1":
		amount, err := a.promptAmount("Enter new amount: ")
		if err != nil {
			return err
		}
		date, err := a.promptDate("Enter new date (MM-DD-YYYY): ")
		if err != nil {
			return err
		}
		description, err := a.promptLine("Description: ")
		if err != nil {
			return err
		}
		if err := a.store.UpdateExpense(ctx, selected.ID, amount, date, description); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Expense updated successfully.")
	case "2":
		if err := a.store.DeleteExpense(ctx, selected.ID); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Expense deleted successfully.")
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
	}
	return nil
}

func (a *App) combinedReport(ctx context.Context) error {
	expenses, err := a.store.ListAllExpenses(ctx)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expenses have been logged.")
		return nil
	}

	fmt.Fprintln(a.out, "\n=== Combined Expenses Report ===")
	a.renderExpenseTable(expenses)
	a.renderUserTotals(expenses)
	a.renderCategoryTotals(expenses)
	return nil
}
