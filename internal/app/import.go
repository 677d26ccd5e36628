package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/worklens/worklens/internal/session"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import sessions from a JSON export",
	Long: `Import sessions from a JSON array of records. Records tolerate loose
shapes (string or numeric earned, category or categoryId, missing duration);
anything without a valid date is dropped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: expected a JSON array: %w", args[0], err)
	}

	sessions := session.Normalize(raw)
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = uuid.NewString()
		}
	}

	if err := db.InsertSessions(sessions); err != nil {
		return fmt.Errorf("storing sessions: %w", err)
	}

	dropped := len(raw) - len(sessions)
	fmt.Printf("Imported %d sessions", len(sessions))
	if dropped > 0 {
		fmt.Printf(" (%d records dropped: not an object, or missing a valid date)", dropped)
	}
	fmt.Println()
	return nil
}
