package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/cli/formatter"
)

func newBrainstormCmd(app *App) *cobra.Command {
	var (
		projectID   string
		modelID     string
		assumptions []string
	)

	cmd := &cobra.Command{
		Use:   "brainstorm <topic>",
		Short: "Brainstorm a topic with an AI model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			bs, err := app.Engine.RunBrainstorm(cmd.Context(), projectID, topic, modelID, assumptions)
			if err != nil {
				return err
			}
			cmd.Println(formatter.StyleHeader.Render("Brainstorming (" + bs.Model + ")"))
			cmd.Println(bs.Result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID")
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "Model to use (default claude)")
	cmd.Flags().StringArrayVarP(&assumptions, "assumption", "a", nil, "Assumption to constrain the brainstorming (repeatable)")
	_ = cmd.MarkFlagRequired("project")

	cmd.AddCommand(newBrainstormCompareCmd(app))
	return cmd
}

func newBrainstormCompareCmd(app *App) *cobra.Command {
	var (
		projectID   string
		models      []string
		assumptions []string
	)

	cmd := &cobra.Command{
		Use:   "compare <topic>",
		Short: "Run the same brainstorming prompt against several models",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			res, err := app.Engine.CompareModels(cmd.Context(), projectID, topic, assumptions, models)
			if err != nil {
				return err
			}
			models := make([]string, 0, len(res.Results))
			for model := range res.Results {
				models = append(models, model)
			}
			sort.Strings(models)
			for _, model := range models {
				cmd.Println(formatter.StyleHeader.Render("── " + model + " ──"))
				cmd.Println(res.Results[model])
				cmd.Println()
			}
			for _, e := range res.Errors {
				cmd.Println(formatter.StyleRed.Render("failed: " + e))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project ID")
	cmd.Flags().StringSliceVar(&models, "models", nil, "Models to compare (default claude-sonnet,gpt4)")
	cmd.Flags().StringArrayVarP(&assumptions, "assumption", "a", nil, "Assumption to constrain the brainstorming (repeatable)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
