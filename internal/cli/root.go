// Package cli wires the deckgen commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/config"
	"github.com/calebmoss/deckgen/internal/workflow"
)

// App holds everything CLI commands need.
type App struct {
	Engine *workflow.Engine
	Config *config.Config

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "deckgen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "deckgen",
		Short:         "Generate presentation slide decks from brainstorming to export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newBrainstormCmd(app),
		newOutlineCmd(app),
		newSlidesCmd(app),
		newExportCmd(app),
	)

	return root
}
