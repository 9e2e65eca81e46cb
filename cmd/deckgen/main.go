package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/calebmoss/deckgen/internal/cli"
	"github.com/calebmoss/deckgen/internal/config"
	"github.com/calebmoss/deckgen/internal/db"
	"github.com/calebmoss/deckgen/internal/llm"
	"github.com/calebmoss/deckgen/internal/repository"
	"github.com/calebmoss/deckgen/internal/workflow"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Determine DB path: env var, config file, or ~/.deckgen/deckgen.db
	dbPath := os.Getenv("DECKGEN_DB")
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".deckgen", "deckgen.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := cfg.LLMConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	var stepObserver workflow.StepObserver = workflow.NoopStepObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
		stepObserver = workflow.NewLogStepObserver(os.Stderr)
	}

	engine := workflow.NewEngine(
		repository.NewSQLiteProjectRepo(database),
		llm.NewClient(llmCfg, llmObserver),
		nil,
		stepObserver,
	)

	app := &cli.App{
		Engine: engine,
		Config: cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
