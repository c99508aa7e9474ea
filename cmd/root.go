// Package cmd wires the cachesweep pipeline to its command-line surface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakemirror/cachesweep/internal/catalog"
	"github.com/lakemirror/cachesweep/internal/engine"
	"github.com/lakemirror/cachesweep/internal/progress"
	"github.com/lakemirror/cachesweep/internal/report"
	"github.com/lakemirror/cachesweep/internal/scan"
	"github.com/lakemirror/cachesweep/internal/size"
	"github.com/lakemirror/cachesweep/internal/ui"
)

var (
	// Global flags
	accurate bool
	skipSize bool
	debug    bool
	ignore   []string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = fmt.Sprintf("%s (%s) built %s", appVersion, appCommit, appDate)
}

var rootCmd = &cobra.Command{
	Use:          "cachesweep",
	Short:        "Find and reclaim cache disk space",
	Long:         longHelp(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSweep,
}

// Execute runs the root command. A non-nil error means command-line
// misuse; the caller exits non-zero. Everything downstream of flag parsing
// reports through the menu instead of failing.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&accurate, "accurate", false, "Measure exact byte sizes (slower)")
	rootCmd.Flags().BoolVar(&skipSize, "skip-size-calculation", false, "List cache folders without measuring them")
	rootCmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Categories to skip, repeatable or comma-separated")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.Version = fmt.Sprintf("%s (%s) built %s", appVersion, appCommit, appDate)

	// Bad flags are the one fatal path; point at --help instead of dumping
	// the full usage block.
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun 'cachesweep --help' for usage", err)
	})
}

func longHelp() string {
	var b strings.Builder
	b.WriteString("CacheSweep inventories known cache-bearing locations, measures their\n")
	b.WriteString("disk usage, groups them by category, and reclaims space through an\n")
	b.WriteString("interactive menu. Nothing is deleted without confirmation.\n\n")
	b.WriteString("Categories:\n")
	for _, c := range catalog.Categories {
		fmt.Fprintf(&b, "  %-8s %s\n", c.String(), c.Description())
	}
	return b.String()
}

func runSweep(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	exclude := make(map[catalog.Category]bool)
	for _, name := range ignore {
		c, ok := catalog.ParseCategory(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown category %q ignored\n", name)
			continue
		}
		exclude[c] = true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}

	resolver := &scan.Resolver{Home: home, Exclude: exclude}
	entries := resolver.Resolve()
	if len(entries) == 0 {
		fmt.Println("No cache folders found.")
		return nil
	}

	interactive := ui.IsTerminal(os.Stdout)
	if !skipSize {
		mode := size.Fast
		if accurate {
			mode = size.Accurate
		}
		est := &size.Estimator{Mode: mode}
		// Debug traces and the progress TUI would fight over stderr.
		progress.Measure(est, entries, interactive && !debug)
	}

	opts := report.Options{ShowSizes: !skipSize, Colored: interactive}
	if banner := report.Banner(home, opts); banner != "" {
		fmt.Println(banner)
	}

	eng := &engine.Engine{
		In:      os.Stdin,
		Out:     os.Stdout,
		Entries: entries,
		Deleter: engine.NewOSDeleter(),
		Opts:    opts,
	}
	return eng.Run()
}
