package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past questions and answers",
	Long: `List previously asked questions and the answers received.

History is recorded locally and survives logout.`,
	RunE: runHistory,
}

// Flags for history.
var (
	historyDocumentID string
	historyLimit      int
)

func init() {
	historyCmd.Flags().StringVarP(
		&historyDocumentID, "document", "d", "", "Only show history for this document id")
	historyCmd.Flags().IntVarP(
		&historyLimit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context(), historyDocumentID, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %s (%s)\n", entry.AskedAt.Local().Format("2006-01-02 15:04"), entry.FileName, entry.DocumentID)
		cmd.Printf("  Q: %s\n", entry.Question)
		cmd.Printf("  A: %s\n\n", strings.ReplaceAll(entry.Answer, "\n", "\n     "))
	}
	return nil
}
