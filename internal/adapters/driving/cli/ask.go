package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [document-id] [question...]",
	Short: "Ask a question about a document",
	Long: `Ask a one-shot question about a processed document.

The document must have status 'ready'; find ids with 'contexta docs list'.

Examples:
  contexta ask 4f1c2 "What is the total in the invoice?"
  contexta ask 4f1c2 What is the total?`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if documentService == nil || chatService == nil {
		return errors.New("chat service not configured")
	}

	// The selection is resolved against a fresh set so a stale id
	// from an earlier listing fails cleanly.
	if _, err := documentService.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	doc, err := documentService.Select(args[0])
	if err != nil {
		return fmt.Errorf("selecting document: %w", err)
	}

	question := strings.Join(args[1:], " ")
	if err := chatService.Send(cmd.Context(), question); err != nil {
		return fmt.Errorf("asking about %s: %w", doc.FileName, err)
	}

	messages := chatService.Messages()
	if len(messages) == 0 {
		return nil
	}

	last := messages[len(messages)-1]
	cmd.Println(last.Content)
	return nil
}
