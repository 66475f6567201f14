package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"slices"

	"coderank/internal/leaderboard"
	"coderank/internal/viewport"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FallbackWidth is the viewport width in pixels used when neither --width
// nor a terminal is available.
const FallbackWidth = 1024

// Print flags
var (
	printSort   string
	printDesc   bool
	printHandle string
	printPage   int
	printWidth  int
	printFormat string
)

var printFormats = []string{"table", "markdown", "csv", "json"}

// printCmd renders one page of the leaderboard and exits
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print one page of the leaderboard",
	Long: `Fetches the leaderboard once and prints a single page.

The same rules as the interactive table apply: numeric columns sort by value
with non-numeric cells last, the Handle filter is a case-sensitive prefix
match, and the Rank/Handle columns shrink at narrow widths.

Example:
  coderank print --sort Codeforces_Rating --desc --page-size 10
  coderank print --handle al --format markdown`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&printSort, "sort", "", "Column to sort by (CSV header name)")
	printCmd.Flags().BoolVar(&printDesc, "desc", false, "Sort descending")
	printCmd.Flags().StringVar(&printHandle, "handle", "", "Only rows whose Handle starts with this prefix")
	printCmd.Flags().IntVar(&printPage, "page", 1, "Page number, starting at 1")
	printCmd.Flags().IntVar(&printWidth, "width", 0, "Viewport width in pixels (default: terminal width)")
	printCmd.Flags().StringVarP(&printFormat, "format", "f", "table", fmt.Sprintf("Output format %v", printFormats))
}

// runPrint drives the view state through mount, load and complete without
// a terminal UI, then renders the requested page.
func runPrint(cmd *cobra.Command, args []string) error {
	if !slices.Contains(printFormats, printFormat) {
		return fmt.Errorf("unknown format %q (valid: %v)", printFormat, printFormats)
	}
	if printSort != "" {
		if _, ok := leaderboard.DefaultSchema().Lookup(printSort); !ok {
			return fmt.Errorf("%w: %s", leaderboard.ErrUnknownColumn, printSort)
		}
	}

	width := resolvePrintWidth()
	view := leaderboard.NewViewState(viewConfig(cfg))
	if err := view.Mount(viewport.Static(width)); err != nil {
		return err
	}
	defer view.Unmount()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res := newLoadFunc(cfg)(ctx)
	if err := view.Complete(res); err != nil {
		return err
	}
	if !res.OK() {
		logger.Warn("Printing empty leaderboard",
			zap.Stringer("reason", res.Failure),
			zap.Error(res.Err))
		fmt.Fprintln(cmd.ErrOrStderr(), loadFailureNote(res, cfg.Fetch.URL))
	}

	if printHandle != "" {
		view.SetFilterEnabled(true)
		view.SetFilterText(printHandle)
	}
	if printSort != "" {
		if err := view.SetSort(printSort, printDesc); err != nil {
			return err
		}
	}
	view.GotoPage(printPage - 1)

	logger.Debug("Rendering leaderboard",
		zap.Int("width", width),
		zap.String("format", printFormat),
		zap.Int("rows", len(view.Visible())))

	return render(cmd.OutOrStdout(), printFormat, view, cfg.UI.CellWidth)
}

// loadFailureNote is the one-line stderr summary of a failed load.
func loadFailureNote(res leaderboard.Result, url string) string {
	switch {
	case leaderboard.IsStatus(res.Err, http.StatusNotFound):
		return fmt.Sprintf("coderank: no leaderboard at %s (404)", url)
	case res.Failure == leaderboard.FailureStatus:
		return fmt.Sprintf("coderank: leaderboard request failed: %v", res.Err)
	default:
		return fmt.Sprintf("coderank: could not load leaderboard (%s)", res.Failure)
	}
}

func resolvePrintWidth() int {
	if printWidth > 0 {
		return printWidth
	}
	if w, ok := viewport.TerminalWidth(int(os.Stdout.Fd()), cfg.UI.CellWidth); ok {
		return w
	}
	return FallbackWidth
}
