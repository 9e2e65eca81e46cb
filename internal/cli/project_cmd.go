package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/cli/formatter"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage slide deck projects",
	}

	cmd.AddCommand(
		newProjectNewCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			p, err := app.Engine.CreateProject(cmd.Context(), title)
			if err != nil {
				return err
			}
			cmd.Printf("Created project %s [%s]\n", p.Title, p.DisplayID())
			return nil
		},
	}
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Engine.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Print(formatter.RenderProjectList(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project's progress through the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Engine.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Print(formatter.RenderProject(p))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Engine.DeleteProject(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Removed project %s\n", args[0])
			return nil
		},
	}
}
