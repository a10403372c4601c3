package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/tuning_plot/internal/parser"
	"github.com/user/tuning_plot/internal/report"
)

//go:embed all:frontend/public
var assets embed.FS

var (
	verbose bool
	logger  *zap.Logger

	// inputFile is fixed; tests point it at a temp dir.
	inputFile = parser.DefaultFile

	// showChart blocks until the viewer window is closed.
	showChart = runViewer
)

var rootCmd = &cobra.Command{
	Use:   "tuning_plot",
	Short: "Plot the tuning error column of tuning.csv",
	Long: `tuning_plot reads the semicolon-delimited tuning log tuning.csv from the
current directory and shows the error column (e) against the iteration
column (it) as a line chart. The command returns when the window is closed.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := report.DefaultChartConfig()
		chart, err := buildChart(inputFile, cfg)
		if err != nil {
			return err
		}
		return showChart(NewApp(chart, logger))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runViewer(app *App) error {
	err := wails.Run(&options.App{
		Title:  app.title,
		Width:  860,
		Height: 520,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}

// run executes the command and flushes the logger on every path, including
// the error paths where cobra skips its post-run hooks.
func run() int {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
