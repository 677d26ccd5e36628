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
	insightsPeriod string
	insightsFrom   string
	insightsTo     string
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Earnings trends and work patterns",
	Long: `Analyze work patterns: best weekday, peak hours, earnings trend, the
longest session, and whether today deviates from your recent baseline.

Insights without enough data behind them are reported as such, never as
zeros.`,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsPeriod, "period", "all", "Period (today, week, month, year, halfMonth1, halfMonth2, all)")
	insightsCmd.Flags().StringVar(&insightsFrom, "from", "", "Custom period start (YYYY-MM-DD)")
	insightsCmd.Flags().StringVar(&insightsTo, "to", "", "Custom period end (YYYY-MM-DD)")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	kind, window, err := resolveWindow(insightsPeriod, insightsFrom, insightsTo, now)
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

	result := computeBlocking(cfg.Dispatcher(), dispatch.Request{
		Kind: kind, Window: window, Sessions: sessions, Params: cfg.Params(now),
	})

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(result.Insights)
	}

	renderInsights(result.Insights)
	return nil
}

const notEnoughData = "not enough data yet"

func renderInsights(set analyzer.InsightSet) {
	fmt.Println(output.Section("Insights"))

	if bw := set.BestWeekday; bw != nil {
		fmt.Printf(" %s %s averages %s per worked day\n",
			output.StyleLabel.Render("Best weekday"),
			output.StyleBold.Render(bw.Day), output.Money(bw.AvgEarned))
	} else {
		printUnavailable("Best weekday")
	}

	if pw := set.PeakWindow; pw != nil {
		fmt.Printf(" %s %s-%s at %s/h\n",
			output.StyleLabel.Render("Peak hours"),
			output.ClockHour(pw.StartHour), output.ClockHour(pw.EndHour),
			output.Money(pw.Rate))
	} else {
		printUnavailable("Peak hours")
	}

	if tr := set.EarningsTrend; tr != nil && tr.Direction != analyzer.TrendInsufficient {
		fmt.Printf(" %s %s over %d days %s\n",
			output.StyleLabel.Render("Earnings trend"),
			string(tr.Direction), tr.WindowDays,
			output.TrendArrowPercent(tr.ChangePercent))
	} else {
		printUnavailable("Earnings trend")
	}

	if ls := set.LongestSession; ls != nil {
		fmt.Printf(" %s %s on %s (%s earned)\n",
			output.StyleLabel.Render("Longest session"),
			output.Hours(ls.DurationHours), ls.Date, output.Money(ls.Earned))
	} else {
		printUnavailable("Longest session")
	}

	if an := set.TodayAnomaly; an != nil {
		style := output.StyleSuccess
		if an.Direction == analyzer.AnomalyBelow {
			style = output.StyleWarning
		}
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Today"),
			style.Render(fmt.Sprintf("%.0f%% %s your recent baseline (%s so far)",
				an.Percent, an.Direction, output.Money(an.Total))))
	} else {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render("Today"),
			output.StyleMuted.Render("within the usual range"))
	}
}

func printUnavailable(label string) {
	fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), output.StyleMuted.Render(notEnoughData))
}
