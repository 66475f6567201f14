// Command coderank shows the Current Code Ranking Leaderboard in the
// terminal, either as an interactive table or as a one-shot print.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coderank/cmd/coderank/ui"
	"coderank/internal/config"
	"coderank/internal/leaderboard"
	"coderank/internal/logging"
	"coderank/internal/viewport"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	cfgFile string

	// Resolved configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coderank",
	Short: "coderank - Current Code Ranking Leaderboard in your terminal",
	Long: `coderank downloads the published leaderboard CSV once and shows it as a
sortable, pageable table.

Run without arguments to start the interactive table. Use "coderank print"
for a one-shot rendering suitable for pipes and scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, used, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded

		// The interactive table owns the screen; its logs only go to a file.
		var fallback zapcore.WriteSyncer
		if cmd.HasParent() {
			fallback = zapcore.Lock(os.Stderr)
		}
		if err := logging.Initialize(cfg.Logging, fallback); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryCLI)
		logging.Get(logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("file", used),
			zap.String("url", cfg.Fetch.URL),
			zap.Stringer("level", logging.Level()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runInteractive,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "Config file (default: coderank.yaml in the current directory)")
	pf.String("url", leaderboard.DefaultURL, "Leaderboard CSV URL")
	pf.String("timeout", "0", "Fetch timeout (0 disables)")
	pf.Int("page-size", leaderboard.DefaultPageSize, fmt.Sprintf("Rows per page %v", leaderboard.PageSizes))
	pf.Int("breakpoint", leaderboard.CompactBreakpoint, "Viewport width in pixels at or below which pinned columns shrink")
	pf.Int("cell-width", viewport.DefaultCellWidth, "Pixels per terminal column")
	pf.String("theme", "auto", "Color theme (auto, light, dark)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")
	pf.String("log-file", "", "Append logs to this file")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// viewConfig maps the UI settings onto the leaderboard view.
func viewConfig(c *config.Config) leaderboard.ViewConfig {
	return leaderboard.ViewConfig{
		Schema:     leaderboard.DefaultSchema(),
		Breakpoint: c.UI.CompactBreakpoint,
		PageSize:   c.UI.PageSize,
	}
}

// newLoadFunc returns the single-fetch loader bounded by fetch.timeout.
func newLoadFunc(c *config.Config) ui.LoadFunc {
	loader := leaderboard.NewLoader(c.Fetch.URL, logging.Get(logging.CategoryFetch))
	timeout := c.GetFetchTimeout()
	return func(ctx context.Context) leaderboard.Result {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return loader.Load(ctx)
	}
}

// runInteractive starts the full-screen leaderboard.
func runInteractive(cmd *cobra.Command, args []string) error {
	width, _ := viewport.TerminalWidth(int(os.Stdout.Fd()), cfg.UI.CellWidth)

	page := ui.NewLeaderboardPage(ui.PageConfig{
		View:         viewConfig(cfg),
		CellWidth:    cfg.UI.CellWidth,
		InitialWidth: width,
		Theme:        cfg.UI.Theme,
		Load:         newLoadFunc(cfg),
		Logger:       logging.Get(logging.CategoryUI),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(page, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("Interactive session failed", zap.Error(err))
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
