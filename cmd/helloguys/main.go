package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/kiranj/helloguys/internal/assistant"
	"github.com/kiranj/helloguys/internal/cli"
	"github.com/kiranj/helloguys/internal/db"
	"github.com/kiranj/helloguys/internal/knowledge"
	"github.com/kiranj/helloguys/internal/llm"
	"github.com/kiranj/helloguys/internal/repository"
	"github.com/kiranj/helloguys/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Open database (HELLOGUYS_DB or ~/.helloguys/helloguys.db)
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	transcriptRepo := repository.NewSQLiteTranscriptRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Load the bundled knowledge base
	store := knowledge.LoadBundled(knowledge.DefaultConfig())

	// Wire the generation backend (only when an API key is configured)
	llmCfg := llm.LoadConfig()
	var client llm.Client
	if llmCfg.APIKey != "" {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewGeminiClient(llmCfg, observer)
	}

	settingsSvc := service.NewSettingsService(settingsRepo)
	responder := assistant.NewResponder(store, client, assistant.Options{})

	app := &cli.App{
		Chat:      service.NewChatService(transcriptRepo, responder),
		Settings:  settingsSvc,
		Responder: responder,
		Store:     store,
		LLMConfig: llmCfg,

		IsInteractive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
