package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent task changes",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

var logLimit int

func init() {
	logCmd.Flags().IntVar(&logLimit, "limit", 20, "Maximum number of changes to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	_, env, err := openStore()
	if err != nil {
		return err
	}
	defer env.Close()

	j, err := env.RequireJournal()
	if err != nil {
		return err
	}
	events, err := j.TaskEvents(cmd.Context(), logLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No changes recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACTION\tTASK")
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ev.CreatedAt.Local().Format("2006-01-02 15:04"), ev.Action, ev.Text)
	}
	return w.Flush()
}
