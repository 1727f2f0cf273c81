// Command contexta is the terminal client for the Contexta document
// question-answering service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driven/api"
	configfile "github.com/contexta-labs/contexta-cli/internal/adapters/driven/config/file"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driven/storage/file"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/cli"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
	"github.com/contexta-labs/contexta-cli/internal/core/services"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; system env wins elsewhere.
	_ = godotenv.Load()

	cfg, err := configfile.LoadConfig("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	sessionStore, err := file.NewSessionStore("")
	if err != nil {
		return fmt.Errorf("initialising session store: %w", err)
	}

	sessions := services.NewSessionManager(sessionStore)

	client := api.NewClient(api.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout(),
		RateLimit: rate.Limit(cfg.API.RateLimitRPS),
	}, sessions)

	authSvc := services.NewAuthService(client, sessions)

	docSvc := services.NewDocumentService(client, sessions)
	if delay := cfg.Upload.RefreshDelay(); delay > 0 {
		docSvc.SetRefreshDelay(delay)
	}

	// History degrades to nothing rather than blocking the client when
	// the local database cannot be opened.
	var historyStore driven.HistoryStore
	if store, err := sqlite.NewStore(""); err != nil {
		logger.Warn("history unavailable: %v", err)
	} else {
		defer store.Close()
		historyStore = store
	}

	chatSvc := services.NewChatService(client, docSvc, sessions, historyStore)
	historySvc := services.NewHistoryService(historyStore)

	// Session teardown cascades into document and chat state.
	sessions.OnTeardown(docSvc.Reset)
	sessions.OnTeardown(chatSvc.Reset)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Auth:      authSvc,
		Documents: docSvc,
		Chat:      chatSvc,
		History:   historySvc,
	})

	return cli.Execute()
}
