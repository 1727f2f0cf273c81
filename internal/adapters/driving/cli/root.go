// Package cli implements the cobra command-line interface for Contexta.
// It is a driving adapter: commands call into core services through the
// driving ports and never touch the backend directly.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// version is set via SetVersion at startup.
var version = "dev"

// Services injected before Execute.
var (
	authService     driving.AuthService
	documentService driving.DocumentService
	chatService     driving.ChatService
	historyService  driving.HistoryService
)

// verbose is bound to the global --verbose flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "contexta",
	Short: "Chat with your documents from the terminal",
	Long: `Contexta is a terminal client for the Contexta document
question-answering service.

Log in, upload documents, and once a document has finished processing,
ask questions about it. Run without a subcommand to get this help, or
use 'contexta tui' for the interactive interface.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services aggregates everything the CLI needs injected.
type Services struct {
	Auth      driving.AuthService
	Documents driving.DocumentService
	Chat      driving.ChatService
	History   driving.HistoryService
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(s Services) {
	authService = s.Auth
	documentService = s.Documents
	chatService = s.Chat
	historyService = s.History
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}
