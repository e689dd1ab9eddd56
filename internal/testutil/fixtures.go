package testutil

import (
	"testing"
	"time"

	"pembukuan/internal/models"

	"gorm.io/gorm"
)

// TransactionFixture describes a transaction to insert directly into the
// test database. Zero values get defaults: today, CategoryOther.
type TransactionFixture struct {
	Date     time.Time
	Kind     models.Kind
	Amount   int64
	Category models.Category
	Owner    *models.Owner
	Note     string
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// OwnerPtr returns a pointer to o.
func OwnerPtr(o models.Owner) *models.Owner {
	return &o
}

// CreateTestTransaction inserts a transaction described by f.
func CreateTestTransaction(t *testing.T, db *gorm.DB, f TransactionFixture) *models.Transaction {
	t.Helper()

	if f.Date.IsZero() {
		f.Date = time.Now()
	}
	if f.Category == "" {
		f.Category = models.CategoryOther
	}

	tx := &models.Transaction{
		Date:     models.NormalizeDate(f.Date),
		Kind:     f.Kind,
		Amount:   f.Amount,
		Category: f.Category,
		Owner:    f.Owner,
	}
	if f.Note != "" {
		note := f.Note
		tx.Note = &note
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestIncome inserts an income transaction on date.
func CreateTestIncome(t *testing.T, db *gorm.DB, date time.Time, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, TransactionFixture{Date: date, Kind: models.KindIncome, Amount: amount, Category: models.CategorySalary})
}

// CreateTestExpense inserts an expense transaction on date.
func CreateTestExpense(t *testing.T, db *gorm.DB, date time.Time, amount int64, category models.Category) *models.Transaction {
	t.Helper()
	return CreateTestTransaction(t, db, TransactionFixture{Date: date, Kind: models.KindExpense, Amount: amount, Category: category})
}

// SeedMarch2024 inserts the two reference transactions of the household
// ledger: a 5,000,000 salary and a 1,200,000 food expense, both owned by Me.
func SeedMarch2024(t *testing.T, db *gorm.DB) (income, expense *models.Transaction) {
	t.Helper()

	income = CreateTestTransaction(t, db, TransactionFixture{
		Date:     Date(2024, time.March, 5),
		Kind:     models.KindIncome,
		Amount:   5000000,
		Category: models.CategorySalary,
		Owner:    OwnerPtr(models.OwnerMe),
	})
	expense = CreateTestTransaction(t, db, TransactionFixture{
		Date:     Date(2024, time.March, 10),
		Kind:     models.KindExpense,
		Amount:   1200000,
		Category: models.CategoryFoodAndDrink,
		Owner:    OwnerPtr(models.OwnerMe),
	})
	return income, expense
}
