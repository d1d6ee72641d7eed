// Package exporter shapes ledger data into tabular rows and serializes them
// to a spreadsheet file (xlsx or CSV).
package exporter

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/ledger"
)

// Fixed labels of the statistics table.
const (
	LabelTotalExpense = "Tổng cộng chi tiêu"
	LabelBalance      = "Số dư cuối tháng"
	LabelTotalIncome  = "Tổng thu nhập"

	// SheetName is the xlsx worksheet title.
	SheetName = "Thống kê chi tiêu"
	// DefaultFileName is used when no output path is given.
	DefaultFileName = "thong_ke_chi_tieu.xlsx"
)

// Row is one line of the exported table. Summary rows carry an empty
// position column.
type Row struct {
	Position string          `csv:"STT"`
	Name     string          `csv:"Nội dung chi tiêu"`
	Amount   decimal.Decimal `csv:"Số tiền (VNĐ)"`
}

// Project transforms the ledger into the ordered row sequence: one row per
// expense with its 1-based position, followed by exactly three summary rows
// in fixed order (total expense, balance, total income).
func Project(income decimal.Decimal, expenses []ledger.Expense, totals ledger.Totals) []Row {
	rows := make([]Row, 0, len(expenses)+3)
	for i, expense := range expenses {
		rows = append(rows, Row{
			Position: strconv.Itoa(i + 1),
			Name:     expense.Name,
			Amount:   expense.Amount,
		})
	}
	rows = append(rows,
		Row{Name: LabelTotalExpense, Amount: totals.TotalExpense},
		Row{Name: LabelBalance, Amount: totals.Balance},
		Row{Name: LabelTotalIncome, Amount: income},
	)
	return rows
}

// Validate enforces the export preconditions: income set and at least one
// expense, and every expense named with a non-zero amount. The returned
// ValidationError carries the advisory distinguishing the two cases.
func Validate(l *ledger.Ledger, catalog advisory.Catalog) error {
	if strings.TrimSpace(l.IncomeRaw()) == "" || l.Len() == 0 {
		return &apperror.ValidationError{
			Advisory: catalog.ExportMissingData,
			Reason:   "income unset or no expenses",
		}
	}
	for _, expense := range l.Expenses() {
		if strings.TrimSpace(expense.Name) == "" || expense.Amount.IsZero() {
			return &apperror.ValidationError{
				Advisory: catalog.ExportIncomplete,
				Reason:   "expense without name or amount",
			}
		}
	}
	return nil
}
