package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebmoss/deckgen/internal/domain"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Export the deck to a presentation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := domain.ExportFormat(format)
			if !f.Valid() {
				return fmt.Errorf("unsupported export format %q (valid: %s)", format, validFormats())
			}
			dir := outDir
			if dir == "" {
				dir = app.Config.OutputDir
			}
			res, err := app.Engine.Export(cmd.Context(), args[0], f, dir)
			if err != nil {
				return err
			}
			if res.Message != "" {
				cmd.Println(res.Message)
			}
			cmd.Printf("Exported to %s (%s)\n", res.Path, res.Format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "Export format: "+validFormats())
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")
	return cmd
}

func validFormats() string {
	formats := make([]string, 0, len(domain.ValidExportFormats))
	for f := range domain.ValidExportFormats {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return strings.Join(formats, ", ")
}
