package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file-or-glob>...",
		Short: "Import rooms, areas and tasks from YAML or JSON household files",
		Long: "Import household files. Arguments may be paths or doublestar globs such as\n" +
			"'households/**/*.yaml'. Every file is validated before anything is written,\n" +
			"and the whole import runs in one transaction.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return fmt.Errorf("import is not configured")
			}
			res, err := app.Import.Import(context.Background(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range res.Files {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✔"), f)
			}
			fmt.Fprintf(out, "Imported %d rooms, %d areas, %d tasks\n", res.RoomCount, res.AreaCount, res.TaskCount)
			return nil
		},
	}
}
