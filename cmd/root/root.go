// Package root contains the root command for the application.
package root

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/config"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/container"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Output is the export file path shared by commands that write a file.
	Output string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "thongkesosach",
		Short: "Trợ lý thống kê thu nhập và chi tiêu cá nhân.",
		Long: `thongkesosach lập bảng thống kê thu nhập và chi tiêu cá nhân.
Nhập thủ công hoặc mô tả bằng lời để AI tự trích xuất, rồi xuất bảng ra file Excel/CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to thongkesosach!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&Output, "output", "o", "", "Output spreadsheet file (.xlsx or .csv)")
}

// NewContainer loads the configuration and wires the application
// dependencies for a command run.
func NewContainer(ctx context.Context) (*container.Container, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	if Output == "" {
		Output = cfg.Export.Output
	}
	return container.NewContainer(ctx, cfg)
}
