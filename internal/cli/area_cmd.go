package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/spf13/cobra"
)

func newAreaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage areas within rooms",
	}

	cmd.AddCommand(
		newAreaAddCmd(app),
		newAreaListCmd(app),
		newAreaRenameCmd(app),
		newAreaRemoveCmd(app),
	)

	return cmd
}

func newAreaAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <room> <name>",
		Short: "Add an area to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roomID, err := resolveRoomID(ctx, app, args[0])
			if err != nil {
				return err
			}
			area := &domain.Area{RoomID: roomID, Name: args[1]}
			if err := app.Areas.Create(ctx, area); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added area %s %s\n", formatter.Bold(area.Name), formatter.TruncID(area.ID))
			return nil
		},
	}
}

func newAreaListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list <room>",
		Aliases: []string{"ls"},
		Short:   "List the areas of a room",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			roomID, err := resolveRoomID(ctx, app, args[0])
			if err != nil {
				return err
			}
			areas, err := app.Areas.ListByRoom(ctx, roomID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAreaList(areas))
			return nil
		},
	}
}

func newAreaRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <area> <new-name>",
		Short: "Rename an area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Areas.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed area to %s\n", formatter.Bold(args[1]))
			return nil
		},
	}
}

func newAreaRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <area>",
		Aliases: []string{"rm"},
		Short:   "Remove an area with all of its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Areas.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed area %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
