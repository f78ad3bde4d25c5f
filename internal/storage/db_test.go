package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/wickant0902/expense-tracker/internal/auth"
	"github.com/wickant0902/expense-tracker/internal/models"
)

// DBTestSuite provides a test suite for database operations.
type DBTestSuite struct {
	suite.Suite
	db  *DB
	ctx context.Context
}

// SetupTest runs before each test.
func (s *DBTestSuite) SetupTest() {
	db, err := NewDB(":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	s.db = db
	s.ctx = context.Background()
}

// TearDownTest runs after each test.
func (s *DBTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *DBTestSuite) mustUser(username string) *models.User {
	hash, err := auth.HashPassword("testpass")
	require.NoError(s.T(), err)
	user, err := s.db.CreateUser(s.ctx, username, hash)
	require.NoError(s.T(), err)
	return user
}

func (s *DBTestSuite) mustCategory(name string) *models.Category {
	category, err := s.db.CreateCategory(s.ctx, name)
	require.NoError(s.T(), err)
	return category
}

func (s *DBTestSuite) TestMigrationsIdempotent() {
	// Re-running migrations on an existing schema is a no-op.
	require.NoError(s.T(), runMigrations(s.db.conn))
}

func (s *DBTestSuite) TestCreateUser_Duplicate() {
	s.mustUser("alice")

	_, err := s.db.CreateUser(s.ctx, "alice", "some-other-hash")
	assert.ErrorIs(s.T(), err, models.ErrDuplicateUsername)

	count, err := s.db.UserCount(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, count)
}

func (s *DBTestSuite) TestCreateUser_EmptyUsername() {
	_, err := s.db.CreateUser(s.ctx, "   ", "hash")
	assert.ErrorIs(s.T(), err, models.ErrEmptyUsername)
}

func (s *DBTestSuite) TestAuthenticate() {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(s.T(), err)
	_, err = s.db.CreateUser(s.ctx, "alice", hash)
	require.NoError(s.T(), err)

	user, err := s.db.Authenticate(s.ctx, "alice", "hunter2")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), user)
	assert.Equal(s.T(), "alice", user.Username)

	// Wrong password and unknown user look identical to the caller.
	user, err = s.db.Authenticate(s.ctx, "alice", "hunter3")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), user)

	user, err = s.db.Authenticate(s.ctx, "nobody", "hunter2")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), user)
}

func (s *DBTestSuite) TestCategoryNormalization() {
	created := s.mustCategory("  Food ")
	assert.Equal(s.T(), "food", created.Name)

	// Case and whitespace variants collapse to the same category.
	_, err := s.db.CreateCategory(s.ctx, "FOOD")
	assert.ErrorIs(s.T(), err, models.ErrDuplicateCategory)

	_, err = s.db.CreateCategory(s.ctx, "")
	assert.ErrorIs(s.T(), err, models.ErrEmptyCategoryName)

	categories, err := s.db.ListCategories(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 1)
	assert.Equal(s.T(), "food", categories[0].Name)
}

func (s *DBTestSuite) TestListCategories_Order() {
	s.mustCategory("transport")
	s.mustCategory("food")
	s.mustCategory("utilities")

	categories, err := s.db.ListCategories(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 3)
	assert.Equal(s.T(), "transport", categories[0].Name)
	assert.Equal(s.T(), "food", categories[1].Name)
	assert.Equal(s.T(), "utilities", categories[2].Name)
}

func (s *DBTestSuite) TestRenameCategory() {
	category := s.mustCategory("food")

	require.NoError(s.T(), s.db.RenameCategory(s.ctx, category.ID, " Groceries "))

	updated, err := s.db.GetCategory(s.ctx, category.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), updated)
	assert.Equal(s.T(), "groceries", updated.Name)
}

func (s *DBTestSuite) TestRenameCategory_Collision() {
	s.mustCategory("food")
	other := s.mustCategory("transport")

	err := s.db.RenameCategory(s.ctx, other.ID, "Food")
	assert.ErrorIs(s.T(), err, models.ErrDuplicateCategory)
}

func (s *DBTestSuite) TestDeleteCategory_ReferentialGuard() {
	user := s.mustUser("alice")
	category := s.mustCategory("food")

	expense, err := s.db.CreateExpense(s.ctx, user.ID, category.ID, 12.50, "2024-03-14", "lunch")
	require.NoError(s.T(), err)

	linked, err := s.db.HasLinkedExpenses(s.ctx, category.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), linked)

	err = s.db.DeleteCategory(s.ctx, category.ID)
	assert.ErrorIs(s.T(), err, models.ErrCategoryInUse)

	// Once the referencing expense is gone the delete goes through.
	require.NoError(s.T(), s.db.DeleteExpense(s.ctx, expense.ID))
	require.NoError(s.T(), s.db.DeleteCategory(s.ctx, category.ID))

	categories, err := s.db.ListCategories(s.ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), categories)
}

func (s *DBTestSuite) TestCreateAndGetExpense() {
	user := s.mustUser("alice")
	category := s.mustCategory("food")

	created, err := s.db.CreateExpense(s.ctx, user.ID, category.ID, 9.99, "2024-03-14", "coffee beans")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, created.UserID)
	assert.Equal(s.T(), category.ID, created.CategoryID)
	assert.Equal(s.T(), 9.99, created.Amount)
	assert.Equal(s.T(), "2024-03-14", created.Date)
	assert.Equal(s.T(), "coffee beans", created.Description)
	assert.WithinDuration(s.T(), time.Now().UTC(), created.LastModified, 5*time.Second)

	got, err := s.db.GetExpense(s.ctx, created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, got.ID)
}

func (s *DBTestSuite) TestListAllExpenses() {
	alice := s.mustUser("alice")
	bob := s.mustUser("bob")
	food := s.mustCategory("food")
	transport := s.mustCategory("transport")

	_, err := s.db.CreateExpense(s.ctx, alice.ID, food.ID, 10.00, "2024-03-01", "groceries")
	require.NoError(s.T(), err)
	_, err = s.db.CreateExpense(s.ctx, bob.ID, transport.ID, 2.75, "2024-03-10", "bus")
	require.NoError(s.T(), err)
	_, err = s.db.CreateExpense(s.ctx, alice.ID, food.ID, 18.40, "2024-02-20", "dinner")
	require.NoError(s.T(), err)

	records, err := s.db.ListAllExpenses(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 3)

	// Most recent expense date first, joined with display names.
	assert.Equal(s.T(), "2024-03-10", records[0].Date)
	assert.Equal(s.T(), "bob", records[0].Username)
	assert.Equal(s.T(), "transport", records[0].Category)
	assert.Equal(s.T(), "2024-03-01", records[1].Date)
	assert.Equal(s.T(), "2024-02-20", records[2].Date)
}

func (s *DBTestSuite) TestListUserExpenses_Periods() {
	user := s.mustUser("alice")
	other := s.mustUser("bob")
	category := s.mustCategory("misc")

	now := time.Now()
	dates := []time.Time{
		now,
		now.AddDate(0, 0, -3),
		now.AddDate(0, 0, -40),
		now.AddDate(0, 0, -400),
	}
	for _, d := range dates {
		_, err := s.db.CreateExpense(s.ctx, user.ID, category.ID, 5.00, d.Format(models.DateFormat), "")
		require.NoError(s.T(), err)
	}
	// Another user's expense must never appear.
	_, err := s.db.CreateExpense(s.ctx, other.ID, category.ID, 99.00, now.Format(models.DateFormat), "")
	require.NoError(s.T(), err)

	countWithin := func(p models.Period) int {
		start, end, filtered := p.Bounds(now)
		n := 0
		for _, d := range dates {
			ds := d.Format(models.DateFormat)
			if !filtered || (ds >= start && ds <= end) {
				n++
			}
		}
		return n
	}

	for _, p := range []models.Period{
		models.PeriodDaily,
		models.PeriodWeekly,
		models.PeriodMonthly,
		models.PeriodYearly,
		models.PeriodAll,
	} {
		records, err := s.db.ListUserExpenses(s.ctx, user.ID, p)
		require.NoError(s.T(), err)
		assert.Len(s.T(), records, countWithin(p), "period %s", p)
		for _, r := range records {
			assert.Equal(s.T(), "alice", r.Username)
		}
	}

	// The weekly window holds exactly today and three days ago.
	records, err := s.db.ListUserExpenses(s.ctx, user.ID, models.PeriodWeekly)
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 2)
	assert.Equal(s.T(), now.Format(models.DateFormat), records[0].Date)
	assert.Equal(s.T(), now.AddDate(0, 0, -3).Format(models.DateFormat), records[1].Date)

	all, err := s.db.ListUserExpenses(s.ctx, user.ID, models.PeriodAll)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 4)
	// Sorted by expense date descending.
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(s.T(), all[i-1].Date, all[i].Date)
	}
}

func (s *DBTestSuite) TestUpdateExpense_PreservesIdentity() {
	user := s.mustUser("alice")
	category := s.mustCategory("food")

	created, err := s.db.CreateExpense(s.ctx, user.ID, category.ID, 10.00, "2024-03-01", "before")
	require.NoError(s.T(), err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(s.T(), s.db.UpdateExpense(s.ctx, created.ID, 22.50, "2024-03-05", "after"))

	updated, err := s.db.GetExpense(s.ctx, created.ID)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), created.ID, updated.ID)
	assert.Equal(s.T(), created.UserID, updated.UserID)
	assert.Equal(s.T(), created.CategoryID, updated.CategoryID)
	assert.Equal(s.T(), 22.50, updated.Amount)
	assert.Equal(s.T(), "2024-03-05", updated.Date)
	assert.Equal(s.T(), "after", updated.Description)
	assert.True(s.T(), updated.LastModified.After(created.LastModified),
		"last_modified should be refreshed on update")
}

func (s *DBTestSuite) TestDeleteExpense() {
	user := s.mustUser("alice")
	category := s.mustCategory("food")

	created, err := s.db.CreateExpense(s.ctx, user.ID, category.ID, 10.00, "2024-03-01", "")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.db.DeleteExpense(s.ctx, created.ID))

	_, err = s.db.GetExpense(s.ctx, created.ID)
	assert.Error(s.T(), err, "expected error after deleting expense")
}

func TestDBSuite(t *testing.T) {
	suite.Run(t, new(DBTestSuite))
}
