package models

import (
	"errors"
	"time"
)

// DateFormat is the storage layout for calendar dates (no time component).
const DateFormat = "2006-01-02"

// Expected persistence failures, surfaced as typed errors so callers can
// recover without string matching.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryInUse     = errors.New("category has linked expenses")
	ErrEmptyUsername     = errors.New("username cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// User represents a user account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category represents an expense category. Names are stored normalized
// (trimmed, lowercased).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Expense represents a single expense row. Date carries the storage-format
// calendar date (YYYY-MM-DD).
type Expense struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	CategoryID   int64     `json:"category_id"`
	Amount       float64   `json:"amount"`
	Date         string    `json:"date"`
	Description  string    `json:"description"`
	LastModified time.Time `json:"last_modified"`
}

// ExpenseRecord is an expense joined with its user and category names,
// as consumed by the reporting layer.
type ExpenseRecord struct {
	ID           int64
	Amount       float64
	Date         string
	Category     string
	Username     string
	Description  string
	LastModified time.Time
}
