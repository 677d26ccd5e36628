package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/output"
	"github.com/worklens/worklens/internal/session"
)

var (
	addDate     string
	addStart    string
	addEnd      string
	addDuration float64
	addCategory string
	addEarned   float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a work session",
	Long: `Log a single work session. Duration is derived from --start and --end
when --duration is omitted.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", time.Now().Format(session.DateLayout), "Session date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addStart, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (HH:MM)")
	addCmd.Flags().Float64Var(&addDuration, "duration", 0, "Duration in hours (derived from start/end if omitted)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category name")
	addCmd.Flags().Float64Var(&addEarned, "earned", 0, "Amount earned")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	// Route the flags through the same normalization boundary as imports so
	// hand-entered and imported sessions obey identical rules.
	raw := map[string]any{
		"id":       uuid.NewString(),
		"date":     addDate,
		"start":    addStart,
		"end":      addEnd,
		"category": addCategory,
		"earned":   addEarned,
	}
	if addDuration > 0 {
		raw["durationHours"] = addDuration
	}

	normalized := session.Normalize([]any{raw})
	if len(normalized) == 0 {
		return fmt.Errorf("invalid session: date %q did not parse", addDate)
	}

	s := normalized[0]
	if err := db.InsertSession(s); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	fmt.Printf("Logged %s: %s earned, %s\n", s.Date, output.Money(s.Earned), output.Hours(s.DurationHours))
	return nil
}
