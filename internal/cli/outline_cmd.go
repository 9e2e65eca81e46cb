package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/cli/formatter"
	"github.com/calebmoss/deckgen/internal/workflow"
)

func newOutlineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Create the presentation outline",
	}

	cmd.AddCommand(
		newOutlineSetCmd(app),
		newOutlineGenerateCmd(app),
		newOutlineShowCmd(app),
	)
	return cmd
}

func newOutlineSetCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set <project-id> [outline-text]",
		Short: "Set a manual outline from an argument, file, or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content string
			switch {
			case len(args) == 2:
				content = args[1]
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading outline file: %w", err)
				}
				content = string(data)
			default:
				if app.IsInteractive != nil && app.IsInteractive() {
					return fmt.Errorf("no outline provided: pass text, --file, or pipe via stdin")
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading outline from stdin: %w", err)
				}
				content = string(data)
			}

			o, err := app.Engine.CreateOutline(cmd.Context(), args[0], workflow.OutlineParams{Manual: content})
			if err != nil {
				return err
			}
			cmd.Printf("Outline set (%d bytes, source %s)\n", len(o.Content), o.Source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the outline from a file")
	return cmd
}

func newOutlineGenerateCmd(app *App) *cobra.Command {
	var fromModel, modelID string

	cmd := &cobra.Command{
		Use:   "generate <project-id>",
		Short: "Generate an outline from a stored brainstorming result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Engine.CreateOutline(cmd.Context(), args[0], workflow.OutlineParams{
				FromModel: fromModel,
				ModelID:   modelID,
			})
			if err != nil {
				return err
			}
			cmd.Println(formatter.StyleHeader.Render("Outline (" + o.Model + ")"))
			cmd.Println(o.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromModel, "from", "", "Model whose brainstorming result to expand")
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "Model used to generate the outline (default claude-sonnet)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newOutlineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Print the stored outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Engine.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p.Outline == nil {
				return workflow.ErrNoOutline
			}
			cmd.Println(p.Outline.Content)
			return nil
		},
	}
}
