package cli

import (
	"github.com/alexanderramin/homekeep/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Rooms  service.RoomService
	Areas  service.AreaService
	Tasks  service.TaskService
	Status service.StatusService
	Import service.ImportService

	// IsInteractive reports whether stdin is a terminal. Commands only open
	// forms when it returns true. Nil means non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "homekeep" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "homekeep",
		Short:         "Household chore tracker with derived room and area status",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Consumed by cmd/homekeep before services are built; registered here
	// so it shows up in help and parses cleanly.
	root.PersistentFlags().String("config", "", "Config file (default $HOME/.homekeep/config.yaml)")

	root.AddCommand(
		newRoomCmd(app),
		newAreaCmd(app),
		newTaskCmd(app),
		newStatusCmd(app),
		newImportCmd(app),
		newDashboardCmd(app),
	)

	return root
}
