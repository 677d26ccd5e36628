package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/dispatch"
	"github.com/worklens/worklens/internal/output"
	"github.com/worklens/worklens/internal/period"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Productivity score with factor breakdown",
	Long: `Score the last 30 days out of 100 across four factors: daily goal
completion (40), consistency (25), focus time (20), and break balance (15).`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	now := time.Now()
	result := computeBlocking(cfg.Dispatcher(), dispatch.Request{
		Kind: period.All, Sessions: sessions, Params: cfg.Params(now),
	})

	if result.Score == nil {
		if flagJSON {
			return json.NewEncoder(os.Stdout).Encode(nil)
		}
		fmt.Println("Not enough data: no sessions in the scoring window yet.")
		return nil
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(result.Score)
	}

	score := result.Score
	fmt.Println(output.Section("Productivity score"))
	fmt.Printf(" %s\n\n", output.ScoreBar(score.Score, 30))

	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Goal completion"),
		output.FactorBar(score.GoalCompletion.Value, score.GoalCompletion.Max, 10))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Consistency"),
		output.FactorBar(score.Consistency.Value, score.Consistency.Max, 10))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Focus time"),
		output.FactorBar(score.FocusTime.Value, score.FocusTime.Max, 10))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Break balance"),
		output.FactorBar(score.BreakBalance.Value, score.BreakBalance.Max, 10))
	return nil
}
