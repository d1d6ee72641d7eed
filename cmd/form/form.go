// Package form implements the interactive single-page form command.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hoangkien2400-crypto/thongkesosach/cmd/root"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/tui"
)

// Cmd represents the form command.
var Cmd = &cobra.Command{
	Use:   "form",
	Short: "Mở biểu mẫu tương tác",
	Long: `Mở biểu mẫu thống kê chi tiêu tương tác: nhập thủ công hoặc chuyển
sang tab AI để mô tả bằng lời, xem tổng hợp trực tiếp và xuất file.`,
	Run: formFunc,
}

func formFunc(cmd *cobra.Command, args []string) {
	c, err := root.NewContainer(cmd.Context())
	if err != nil {
		root.Log.Fatalf("Error initializing: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			root.Log.Warnf("Error closing AI client: %v", err)
		}
	}()

	model := tui.New(c.Session(), c.Extractor(), root.Output, c.Logger())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		root.Log.Fatalf("Error running form: %v", err)
	}
}
