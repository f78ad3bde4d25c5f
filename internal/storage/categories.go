package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/wickant0902/expense-tracker/internal/models"
)

// NormalizeCategoryName trims and lowercases a category name so "Food" and
// "food" collapse to the same category.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateCategory inserts a new category. The name is normalized before the
// uniqueness check; duplicates surface as models.ErrDuplicateCategory.
func (db *DB) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = NormalizeCategoryName(name)
	if name == "" {
		return nil, models.ErrEmptyCategoryName
	}

	result, err := db.conn.ExecContext(ctx,
		"INSERT INTO categories (name) VALUES (?)",
		name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &models.Category{ID: id, Name: name}, nil
}

// ListCategories retrieves all categories in insertion order.
func (db *DB) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory retrieves a single category by ID.
func (db *DB) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	row := db.conn.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = ?", id)

	var c models.Category
	err := row.Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// RenameCategory overwrites a category's name. The new name is normalized;
// a collision with an existing name surfaces via the table constraint as
// models.ErrDuplicateCategory.
func (db *DB) RenameCategory(ctx context.Context, id int64, newName string) error {
	newName = NormalizeCategoryName(newName)
	if newName == "" {
		return models.ErrEmptyCategoryName
	}

	_, err := db.conn.ExecContext(ctx,
		"UPDATE categories SET name = ? WHERE id = ?",
		newName, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateCategory
		}
		return fmt.Errorf("rename category: %w", err)
	}
	return nil
}

// HasLinkedExpenses reports whether any expense references the category.
func (db *DB) HasLinkedExpenses(ctx context.Context, categoryID int64) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM expenses WHERE category_id = ?",
		categoryID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count linked expenses: %w", err)
	}
	return count > 0, nil
}

// DeleteCategory deletes a category, refusing with models.ErrCategoryInUse
// while any expense still references it. The check-then-delete is not
// atomic, which is acceptable for a single-session local tool.
func (db *DB) DeleteCategory(ctx context.Context, id int64) error {
	linked, err := db.HasLinkedExpenses(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return models.ErrCategoryInUse
	}

	if _, err := db.conn.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
