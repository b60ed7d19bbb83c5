package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/spf13/cobra"
)

func newRoomCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(
		newRoomAddCmd(app),
		newRoomListCmd(app),
		newRoomRenameCmd(app),
		newRoomRemoveCmd(app),
	)

	return cmd
}

func newRoomAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			room := &domain.Room{Name: args[0]}
			if err := app.Rooms.Create(context.Background(), room); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added room %s %s\n", formatter.Bold(room.Name), formatter.TruncID(room.ID))
			return nil
		},
	}
}

func newRoomListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List rooms",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := app.Rooms.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoomList(rooms))
			return nil
		},
	}
}

func newRoomRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <room> <new-name>",
		Short: "Rename a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoomID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Rooms.Rename(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed room to %s\n", formatter.Bold(args[1]))
			return nil
		},
	}
}

func newRoomRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <room>",
		Aliases: []string{"rm"},
		Short:   "Remove a room with all of its areas and tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRoomID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Rooms.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed room %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
