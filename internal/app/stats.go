package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/analyzer"
	"github.com/worklens/worklens/internal/dispatch"
	"github.com/worklens/worklens/internal/output"
	"github.com/worklens/worklens/internal/period"
)

var (
	statsPeriod  string
	statsFrom    string
	statsTo      string
	statsCompare bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Period totals, category breakdown, comparisons",
	Long: `Show totals for a period: earnings, hours, average rate, days worked
and days off, break time, and the per-category breakdown.

With --compare, the same numbers are computed for the mirror period of
identical length immediately before (previous month for month, previous ISO
week for week) and shown as deltas.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsPeriod, "period", "month", "Period (today, week, month, year, halfMonth1, halfMonth2, all)")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Custom period start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Custom period end (YYYY-MM-DD)")
	statsCmd.Flags().BoolVar(&statsCompare, "compare", false, "Compare against the previous period of equal length")
	rootCmd.AddCommand(statsCmd)
}

// statsOutput is the JSON-serializable output for the stats command.
type statsOutput struct {
	Period     string                    `json:"period"`
	Aggregate  analyzer.PeriodAggregate  `json:"aggregate"`
	Categories []analyzer.CategoryRollup `json:"categories,omitempty"`
	Previous   *analyzer.PeriodAggregate `json:"previous,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	kind, window, err := resolveWindow(statsPeriod, statsFrom, statsTo, now)
	if err != nil {
		return err
	}
	if kind == period.Custom && window == nil {
		fmt.Println("Nothing to show: custom period bounds did not resolve.")
		return nil
	}

	sessions, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	d := cfg.Dispatcher()
	params := cfg.Params(now)
	result := computeBlocking(d, dispatch.Request{
		Kind: kind, Window: window, Sessions: sessions, Params: params,
	})

	var previous *analyzer.PeriodAggregate
	if statsCompare && window != nil {
		prev := window.Previous()
		prevResult := computeBlocking(d, dispatch.Request{
			Kind: period.Custom, Window: &prev, Sessions: sessions, Params: params,
		})
		previous = &prevResult.Aggregate
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(statsOutput{
			Period:     string(kind),
			Aggregate:  result.Aggregate,
			Categories: result.Categories,
			Previous:   previous,
		})
	}

	renderStats(kind, result, previous)
	return nil
}

func renderStats(kind period.Kind, result *dispatch.Result, previous *analyzer.PeriodAggregate) {
	agg := result.Aggregate

	fmt.Println(output.Section(fmt.Sprintf("Stats: %s", kind)))
	rows := [][2]string{
		{"Total earned", output.Money(agg.TotalEarned)},
		{"Total hours", output.Hours(agg.TotalHours)},
		{"Average rate", output.Money(agg.AverageRate) + "/h"},
		{"Days worked", fmt.Sprintf("%d", agg.DaysWorked)},
		{"Days off", fmt.Sprintf("%d", agg.DaysOff)},
		{"Break time", output.Hours(agg.TotalBreakHours)},
		{"Sessions", fmt.Sprintf("%d", agg.SessionCount)},
	}
	for _, r := range rows {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render(r[0]), output.StyleValue.Render(r[1]))
	}

	if previous != nil {
		fmt.Println(output.Section("vs previous period"))
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Earned"),
			output.TrendArrow(agg.TotalEarned-previous.TotalEarned))
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Hours"),
			output.TrendArrow(agg.TotalHours-previous.TotalHours))
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Rate"),
			output.TrendArrow(agg.AverageRate-previous.AverageRate))
	}

	if len(result.Categories) > 0 {
		fmt.Println(output.Section("By category"))
		tbl := output.NewTable("CATEGORY", "HOURS", "EARNED", "RATE", "SESSIONS").AlignRight(1, 2, 3, 4)
		for _, c := range result.Categories {
			tbl.AddRow(c.Category, output.Hours(c.Hours), output.Money(c.Earned),
				output.Money(c.AverageRate)+"/h", fmt.Sprintf("%d", c.Sessions))
		}
		fmt.Println()
		tbl.Print()
	}
}
