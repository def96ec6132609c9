package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fentz26/deskkit/internal/models"
	"github.com/fentz26/deskkit/internal/todo"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a pending task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pending and completed tasks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var editCmd = &cobra.Command{
	Use:   "edit [ref] [text...]",
	Short: "Replace a task's text in place",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

var doneCmd = &cobra.Command{
	Use:   "done [ref]",
	Short: "Mark a pending task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefAction(models.TaskActionComplete, "Completed"),
}

var reopenCmd = &cobra.Command{
	Use:   "reopen [ref]",
	Short: "Move a completed task back to pending",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefAction(models.TaskActionReopen, "Reopened"),
}

var rmCmd = &cobra.Command{
	Use:   "rm [ref]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefAction(models.TaskActionDelete, "Deleted"),
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, env, err := openStore()
	if err != nil {
		return err
	}
	defer env.Close()

	task, err := store.Add(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added p%d: %s\n", len(store.Board().Pending), task.Text)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, env, err := openStore()
	if err != nil {
		return err
	}
	defer env.Close()

	board := store.Board()
	out := cmd.OutOrStdout()
	if board.Len() == 0 {
		fmt.Fprintln(out, "No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REF\tSTATUS\tTASK")
	for _, l := range []todo.List{todo.Pending, todo.Completed} {
		for i, t := range board.Tasks(l) {
			ref := todo.Ref{List: l, Row: i + 1}
			fmt.Fprintf(w, "%s\t%s\t%s\n", ref, l, t.Text)
		}
	}
	return w.Flush()
}

func runEdit(cmd *cobra.Command, args []string) error {
	return applyRef(cmd, models.TaskActionEdit, "Updated", args[0], strings.Join(args[1:], " "))
}

func runRefAction(action models.TaskAction, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return applyRef(cmd, action, verb, args[0], "")
	}
}

// applyRef resolves ref against the stored board and runs action on it.
func applyRef(cmd *cobra.Command, action models.TaskAction, verb, ref, text string) error {
	r, err := todo.ParseRef(ref)
	if err != nil {
		return err
	}
	store, env, err := openStore()
	if err != nil {
		return err
	}
	defer env.Close()

	target, err := store.Board().Resolve(r)
	if err != nil {
		return err
	}
	task, err := store.Do(cmd.Context(), todo.Command{Action: action, ID: target.ID, Text: text})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", verb, task.Text)
	return nil
}
