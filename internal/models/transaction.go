package models

import (
	"strings"
	"time"
)

// Kind classifies a transaction as money coming in or going out
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Kinds lists every supported transaction kind in display order.
var Kinds = []Kind{KindIncome, KindExpense}

// ParseKind maps user input onto a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, true
	case KindExpense:
		return KindExpense, true
	}
	return "", false
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction represents a single income or expense entry in the ledger
type Transaction struct {
	Base
	Date     time.Time `gorm:"type:date;not null;index" json:"date"`
	Category Category  `gorm:"type:varchar(50);not null" json:"category"`
	Amount   int64     `gorm:"type:bigint;not null" json:"amount"`
	Kind     Kind      `gorm:"type:varchar(20);not null" json:"kind"`
	Note     *string   `gorm:"type:text" json:"note,omitempty"`
	Owner    *Owner    `gorm:"type:varchar(50);index" json:"owner,omitempty"`
}

// SignedAmount returns the amount with the sign implied by its kind:
// income adds to the balance, expense subtracts from it.
func (t *Transaction) SignedAmount() int64 {
	if t.Kind == KindExpense {
		return -t.Amount
	}
	return t.Amount
}

// NormalizeDate drops the time of day and pins the calendar date to UTC so
// that range predicates on the date column compare consistently.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
