package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/output"
	"github.com/worklens/worklens/internal/session"
)

var (
	sessionsPeriod string
	sessionsFrom   string
	sessionsTo     string
	sessionsDelete string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List or delete stored sessions",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsPeriod, "period", "all", "Period to list (today, week, month, year, halfMonth1, halfMonth2, all)")
	sessionsCmd.Flags().StringVar(&sessionsFrom, "from", "", "Custom period start (YYYY-MM-DD)")
	sessionsCmd.Flags().StringVar(&sessionsTo, "to", "", "Custom period end (YYYY-MM-DD)")
	sessionsCmd.Flags().StringVar(&sessionsDelete, "delete", "", "Delete the session with this id")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if sessionsDelete != "" {
		removed, err := db.DeleteSession(sessionsDelete)
		if err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
		if !removed {
			fmt.Printf("No session with id %s\n", sessionsDelete)
			return nil
		}
		fmt.Printf("Deleted %s\n", sessionsDelete)
		return nil
	}

	_, window, err := resolveWindow(sessionsPeriod, sessionsFrom, sessionsTo, time.Now())
	if err != nil {
		return err
	}

	var sessions []session.WorkSession
	if window != nil {
		sessions, err = db.ListSessionsByDateRange(
			window.Start.Format(session.DateLayout),
			window.End.Format(session.DateLayout))
	} else {
		sessions, err = db.ListSessions()
	}
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(sessions)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions logged for this period.")
		return nil
	}

	tbl := output.NewTable("ID", "DATE", "START", "END", "HOURS", "CATEGORY", "EARNED").AlignRight(4, 6)
	for _, s := range sessions {
		tbl.AddRow(s.ID, s.Date, s.Start, s.End,
			output.Hours(s.DurationHours), s.Category, output.Money(s.Earned))
	}
	tbl.Print()
	fmt.Printf("\n%d sessions\n", len(sessions))
	return nil
}
