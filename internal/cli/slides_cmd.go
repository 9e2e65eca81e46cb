package cli

import (
	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/cli/formatter"
	"github.com/calebmoss/deckgen/internal/workflow"
)

func newSlidesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Generate and style the slide deck",
	}

	cmd.AddCommand(
		newSlidesGenerateCmd(app),
		newSlidesFormatCmd(app),
		newSlidesShowCmd(app),
	)
	return cmd
}

func newSlidesGenerateCmd(app *App) *cobra.Command {
	var (
		enhance bool
		modelID string
	)

	cmd := &cobra.Command{
		Use:   "generate <project-id>",
		Short: "Build slides from the project outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Engine.GenerateDeck(cmd.Context(), args[0], workflow.GenerateParams{
				Enhance: enhance,
				ModelID: modelID,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Generated %d slides\n\n", len(d.Slides))
			cmd.Print(formatter.RenderDeck(*d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&enhance, "enhance", false, "Improve slide points with an AI model")
	cmd.Flags().StringVarP(&modelID, "model", "m", "", "Enhancement model (default claude-sonnet)")
	return cmd
}

func newSlidesFormatCmd(app *App) *cobra.Command {
	var (
		noBold    bool
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "format <project-id>",
		Short: "Apply presentation styling to the deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := workflow.FormatParams{HighlightColor: highlight}
			if noBold {
				bold := false
				params.BoldKeyTerms = &bold
			}
			d, err := app.Engine.FormatDeck(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			cmd.Print(formatter.RenderDeck(*d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBold, "no-bold", false, "Do not bold key terms")
	cmd.Flags().StringVar(&highlight, "highlight", "", "Highlight color for key terms (CSS color)")
	return cmd
}

func newSlidesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Preview the stored deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Engine.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p.Deck == nil || p.Deck.Empty() {
				return workflow.ErrNoSlides
			}
			cmd.Print(formatter.RenderDeck(*p.Deck))
			return nil
		},
	}
}
