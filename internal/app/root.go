// Package app contains the Cobra command tree for worklens.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/config"
	"github.com/worklens/worklens/internal/dispatch"
	"github.com/worklens/worklens/internal/output"
	"github.com/worklens/worklens/internal/period"
	"github.com/worklens/worklens/internal/session"
	"github.com/worklens/worklens/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "worklens",
	Short: "Statistics and insights for tracked work time and earnings",
	Long: `worklens analyzes your logged work sessions: period totals, earnings
trends, productivity scoring, and pattern insights like your best weekday
and peak hours.

Sessions live in a local SQLite database; add them one by one or import a
JSON export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("worklens", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  add       Log a work session")
		fmt.Println("  sessions  List or delete stored sessions")
		fmt.Println("  import    Import sessions from a JSON export")
		fmt.Println("  stats     Period totals, category breakdown, comparisons")
		fmt.Println("  insights  Earnings trends and work patterns")
		fmt.Println("  score     Productivity score with factor breakdown")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/worklens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// setup loads config, applies output preferences, and opens the database.
func setup() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

// resolveWindow maps the shared period flags to a concrete window. The
// window is nil for "all" and for custom bounds that fail to resolve, which
// downstream code treats as unbounded and empty respectively.
func resolveWindow(periodName, from, to string, now time.Time) (period.Kind, *period.Window, error) {
	if from != "" || to != "" {
		start, err := time.Parse(session.DateLayout, from)
		if err != nil {
			return period.Custom, nil, fmt.Errorf("invalid --from date %q", from)
		}
		end, err := time.Parse(session.DateLayout, to)
		if err != nil {
			return period.Custom, nil, fmt.Errorf("invalid --to date %q", to)
		}
		w, ok := period.Resolve(period.Custom, now, &period.Window{Start: start, End: end})
		if !ok {
			return period.Custom, nil, nil
		}
		return period.Custom, &w, nil
	}

	kind, ok := period.ParseKind(periodName)
	if !ok {
		return "", nil, fmt.Errorf("unknown period %q (today, week, month, year, halfMonth1, halfMonth2, all)", periodName)
	}
	if w, ok := period.Resolve(kind, now, nil); ok {
		return kind, &w, nil
	}
	return kind, nil, nil
}

// computeBlocking drives the dispatcher to completion: a loading response
// means the work went to a background worker, so wait and re-poll.
func computeBlocking(d *dispatch.Dispatcher, req dispatch.Request) *dispatch.Result {
	resp := d.Compute(req)
	for resp.IsLoading {
		d.Flush()
		resp = d.Compute(req)
	}
	return resp.Result
}
