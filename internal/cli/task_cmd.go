package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	homekeepapp "github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage recurring tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
		newTaskForceCmd(app),
		newTaskClearCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var name string
	var every int
	var last whenFlag

	cmd := &cobra.Command{
		Use:   "add <area>",
		Short: "Add a recurring task to an area",
		Long: "Add a recurring task to an area. The area can be given by ID, ID prefix,\n" +
			"name, or Room/Area path. Without --name on a terminal a form is shown.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			areaID, err := resolveAreaID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				v := taskFormValues{}
				if every > 0 {
					v.Every = fmt.Sprint(every)
				}
				if err := taskAddForm(&v).Run(); err != nil {
					return err
				}
				name = v.Name
				every = parsePositiveInt(v.Every, every)
				if v.LastDone != "" {
					if err := last.Set(v.LastDone); err != nil {
						return err
					}
				}
			}

			task := &domain.Task{AreaID: areaID, Name: name, FrequencyDays: every, LastCompleted: last.Time()}
			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (%s) %s\n",
				formatter.Bold(task.Name), formatter.Every(task.FrequencyDays), formatter.TruncID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().IntVar(&every, "every", 0, "Recurrence interval in days (default 7)")
	cmd.Flags().Var(&last, "last", "Last completion (YYYY-MM-DD, RFC3339, today, yesterday)")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list <area>",
		Aliases: []string{"ls"},
		Short:   "List the tasks of an area with their status",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			resp, err := household(ctx, app)
			if err != nil {
				return err
			}
			areaID, err := resolveID("area", args[0], areaCandidates(resp))
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByArea(ctx, areaID)
			if err != nil {
				return err
			}

			statuses := make(map[string]domain.Status, len(tasks))
			if view, ok := findArea(resp, areaID); ok {
				for _, t := range view.Tasks {
					statuses[t.TaskID] = t.Status
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, statuses, resp.Summary.GeneratedAt))
			return nil
		},
	}
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task with its derived status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return printTaskDetail(ctx, cmd.OutOrStdout(), app, task)
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var name string
	var every int

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Rename a task or change its frequency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("every") {
				return fmt.Errorf("nothing to change: pass --name or --every")
			}
			if cmd.Flags().Changed("name") {
				task.Name = name
			}
			if cmd.Flags().Changed("every") {
				task.FrequencyDays = every
			}
			if err := app.Tasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s (%s)\n", formatter.Bold(task.Name), formatter.Every(task.FrequencyDays))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New task name")
	cmd.Flags().IntVar(&every, "every", 0, "New recurrence interval in days")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var at whenFlag

	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a task completed and clear any forced status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			task, err := app.Tasks.Complete(ctx, id, at.Time())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", formatter.Bold(task.Name))
			return printTaskStatus(ctx, cmd.OutOrStdout(), app, task)
		},
	}

	cmd.Flags().Var(&at, "at", "Completion time (YYYY-MM-DD, RFC3339, yesterday); default now")

	return cmd
}

func newTaskForceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "force <task> [soon|due|overdue]",
		Short: "Force a task to show as incomplete regardless of its history",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st := domain.StatusOverdue
			if len(args) == 2 {
				parsed, err := domain.ParseForcedStatus(args[1])
				if err != nil {
					return err
				}
				st = parsed
			}
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.ForceIncomplete(ctx, id, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forced %s\n", formatter.Bold(task.Name))
			return printTaskStatus(ctx, cmd.OutOrStdout(), app, task)
		},
	}
}

func newTaskClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <task>",
		Short: "Clear a forced status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.ClearForce(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared forced status on %s\n", formatter.Bold(task.Name))
			return printTaskStatus(ctx, cmd.OutOrStdout(), app, task)
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <task>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

// taskView re-reads the household status to get the task's derived view.
func taskView(ctx context.Context, app *App, taskID string) (homekeepapp.TaskStatusView, time.Time, error) {
	resp, err := household(ctx, app)
	if err != nil {
		return homekeepapp.TaskStatusView{}, time.Time{}, err
	}
	view, ok := findTask(resp, taskID)
	if !ok {
		return homekeepapp.TaskStatusView{}, time.Time{}, fmt.Errorf("task %s missing from status report", taskID)
	}
	return view, resp.Summary.GeneratedAt, nil
}

func printTaskStatus(ctx context.Context, w io.Writer, app *App, task *domain.Task) error {
	view, _, err := taskView(ctx, app, task.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Status: %s\n", formatter.StatusPill(view.Status))
	return nil
}

func printTaskDetail(ctx context.Context, w io.Writer, app *App, task *domain.Task) error {
	view, now, err := taskView(ctx, app, task.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatter.FormatTaskDetail(task, view, now))
	return nil
}
