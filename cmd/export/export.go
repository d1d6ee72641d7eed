// Package export implements the non-interactive export command: income and
// expenses from flags or a CSV file, validated and written as a spreadsheet.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoangkien2400-crypto/thongkesosach/cmd/root"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/session"
)

var (
	income   string
	expenses []string
	inputCSV string
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Xuất bảng thống kê ra file Excel/CSV",
	Long: `Lập bảng thống kê từ thu nhập và danh sách chi tiêu rồi xuất ra file.
Chi tiêu nhập qua --expense "Tên=Số tiền" (lặp lại được) hoặc đọc từ file CSV
có cùng bố cục cột với file xuất ra.`,
	Example: `  thongkesosach export --income 15000000 --expense "Tiền nhà=4000000" --expense "Tiền ăn=3000000"
  thongkesosach export --income 15000000 --input chi_tieu.csv -o thong_ke.xlsx`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&income, "income", "n", "", "Total income (VNĐ)")
	Cmd.Flags().StringArrayVarP(&expenses, "expense", "e", nil, `Expense as "name=amount", repeatable`)
	Cmd.Flags().StringVarP(&inputCSV, "input", "i", "", "CSV file with expense rows")
}

func exportFunc(cmd *cobra.Command, args []string) {
	c, err := root.NewContainer(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error initializing: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.Warnf("Error closing AI client: %v", err)
		}
	}()

	sess := c.Session()
	sess.SetIncome(income)

	if inputCSV != "" {
		entries, err := exporter.ReadEntriesCSV(inputCSV)
		if err != nil {
			root.Log.Fatalf("Error reading expense CSV: %v", err)
		}
		for _, entry := range entries {
			addEntry(sess, entry.Name, entry.Amount.String())
		}
	}

	for _, raw := range expenses {
		name, amount, ok := strings.Cut(raw, "=")
		if !ok {
			root.Log.Fatalf("Invalid --expense value %q, expected \"name=amount\"", raw)
		}
		addEntry(sess, strings.TrimSpace(name), strings.TrimSpace(amount))
	}

	if err := sess.Export(root.Output); err != nil {
		if advisory := sess.ExportAdvisory(); advisory != "" {
			fmt.Println(advisory)
			os.Exit(1)
		}
		root.Log.Fatalf("Export failed: %v", err)
	}
	root.Log.Infof("Exported to %s", root.Output)
}

func addEntry(sess *session.Session, name, amount string) {
	id := sess.AddExpense()
	sess.UpdateExpenseName(id, name)
	sess.UpdateExpenseAmount(id, amount)
}
