// Package ledger holds the in-memory record of income and expenses for a
// session. The ledger is process-local and never persisted; totals are
// derived on every read, never cached.
package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is one named, amount-bearing line item. Identity is the ID; name
// and amount are freely mutable. Order of expenses is insertion order and is
// display-significant.
type Expense struct {
	ID     string
	Name   string
	Amount decimal.Decimal
}

// Entry is incoming expense data without identity, used for bulk population.
type Entry struct {
	Name   string
	Amount decimal.Decimal
}

// Totals are the derived figures of a ledger.
type Totals struct {
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// Ledger is the session's income and ordered expense list. Not safe for
// concurrent use; all mutations are expected from a single goroutine.
type Ledger struct {
	incomeRaw string
	expenses  []Expense
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// SetIncome replaces the income with a user-supplied string. The raw text is
// retained for the input field; non-numeric input counts as zero in totals.
func (l *Ledger) SetIncome(raw string) {
	l.incomeRaw = raw
}

// IncomeRaw returns the income exactly as the user entered it.
func (l *Ledger) IncomeRaw() string {
	return l.incomeRaw
}

// Income returns the numeric income, zero when unset or non-numeric.
func (l *Ledger) Income() decimal.Decimal {
	return ParseAmount(l.incomeRaw)
}

// AddExpense appends a blank expense record and returns its freshly
// generated ID.
func (l *Ledger) AddExpense() string {
	expense := Expense{ID: uuid.NewString()}
	l.expenses = append(l.expenses, expense)
	return expense.ID
}

// RemoveExpense removes the record with the given ID, preserving the order
// of the remaining records. Reports whether a record was removed.
func (l *Ledger) RemoveExpense(id string) bool {
	for i, expense := range l.expenses {
		if expense.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateName replaces the name on the matching record. No-op when absent.
func (l *Ledger) UpdateName(id, name string) bool {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses[i].Name = name
			return true
		}
	}
	return false
}

// UpdateAmount replaces the amount on the matching record. No-op when absent.
func (l *Ledger) UpdateAmount(id string, amount decimal.Decimal) bool {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses[i].Amount = amount
			return true
		}
	}
	return false
}

// ReplaceAll wholesale-replaces the expense list with the given entries,
// assigning a fresh ID to every record, and overwrites the income when one
// is provided. Existing records are discarded without merging. Used by the
// extraction success path.
func (l *Ledger) ReplaceAll(income *decimal.Decimal, entries []Entry) {
	if income != nil {
		l.incomeRaw = income.String()
	}
	expenses := make([]Expense, 0, len(entries))
	for _, entry := range entries {
		expenses = append(expenses, Expense{
			ID:     uuid.NewString(),
			Name:   entry.Name,
			Amount: entry.Amount,
		})
	}
	l.expenses = expenses
}

// Expenses returns a copy of the ordered expense list.
func (l *Ledger) Expenses() []Expense {
	expenses := make([]Expense, len(l.expenses))
	copy(expenses, l.expenses)
	return expenses
}

// Len returns the number of expense records.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Totals recomputes the derived figures from the current state. Pure: no
// side effects, no caching.
func (l *Ledger) Totals() Totals {
	total := decimal.Zero
	for _, expense := range l.expenses {
		total = total.Add(expense.Amount)
	}
	return Totals{
		TotalExpense: total,
		Balance:      l.Income().Sub(total),
	}
}

// ParseAmount parses a user-entered amount string into a decimal. Currency
// markers and spaces are stripped and a comma decimal separator is accepted;
// anything that still fails to parse counts as zero.
func ParseAmount(raw string) decimal.Decimal {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "VNĐ", "")
	amount = strings.ReplaceAll(amount, "VND", "")
	amount = strings.ReplaceAll(amount, "₫", "")
	amount = strings.ReplaceAll(amount, "đ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
