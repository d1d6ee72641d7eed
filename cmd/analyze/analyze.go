// Package analyze implements the one-shot AI analysis command: free text in,
// statistics table out, optional spreadsheet export.
package analyze

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoangkien2400-crypto/thongkesosach/cmd/root"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/apperror"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/currency"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/session"
)

var (
	text     string
	textFile string
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Phân tích văn bản thu chi bằng AI",
	Long: `Gửi đoạn văn bản mô tả thu nhập và chi tiêu tới Gemini, trích xuất
thành bảng thống kê. Văn bản lấy từ --text, --file hoặc stdin.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Input text describing income and expenses")
	Cmd.Flags().StringVarP(&textFile, "file", "f", "", "Read the input text from a file")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	input, err := readInput()
	if err != nil {
		root.Log.Fatalf("Error reading input: %v", err)
	}

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
	sess.SetAIInput(input)

	ctx := cmd.Context()
	if timeout := c.Config().AI.TimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	if err := sess.Analyze(ctx); err != nil {
		if advisory := apperror.AdvisoryOf(err); advisory != "" {
			fmt.Println(advisory)
			os.Exit(1)
		}
		root.Log.Fatalf("Analysis failed: %v", err)
	}

	printTable(sess)

	if cmd.Flag("output").Changed {
		if err := sess.Export(root.Output); err != nil {
			if advisory := sess.ExportAdvisory(); advisory != "" {
				fmt.Println(advisory)
				os.Exit(1)
			}
			root.Log.Fatalf("Export failed: %v", err)
		}
		root.Log.Infof("Exported to %s", root.Output)
	}
}

func readInput() (string, error) {
	if text != "" {
		return text, nil
	}
	if textFile != "" {
		data, err := os.ReadFile(textFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printTable(sess *session.Session) {
	l := sess.Ledger()
	rows := exporter.Project(l.Income(), l.Expenses(), l.Totals())
	fmt.Printf("%-4s %-30s %18s\n", "STT", "Nội dung chi tiêu", "Số tiền (VNĐ)")
	for _, row := range rows {
		fmt.Printf("%-4s %-30s %18s\n", row.Position, row.Name, currency.FormatVND(row.Amount))
	}
}
