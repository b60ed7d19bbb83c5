package cli

import (
	"context"
	"fmt"

	homekeepapp "github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var rooms []string
	var at whenFlag
	var tree bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show derived room, area and task status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := homekeepapp.NewStatusRequest()

			for _, r := range rooms {
				id, err := resolveRoomID(ctx, app, r)
				if err != nil {
					return err
				}
				req.RoomScope = append(req.RoomScope, id)
			}
			req.Now = at.Time()
			req.IncludeTasks = tree

			resp, err := app.Status.GetStatus(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatStatus(resp))
			if tree {
				fmt.Fprint(out, formatter.FormatStatusTree(resp))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rooms, "room", nil, "Limit to these rooms (name or ID, repeatable)")
	cmd.Flags().Var(&at, "at", "Evaluate as of this date (YYYY-MM-DD or RFC3339)")
	cmd.Flags().BoolVar(&tree, "tree", false, "Show every area and task below each room")

	return cmd
}
