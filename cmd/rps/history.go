package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played rounds",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of rounds to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, env, err := openGame()
	if err != nil {
		return err
	}
	defer env.Close()

	j, err := env.RequireJournal()
	if err != nil {
		return err
	}
	rounds, err := j.Rounds(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds played yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYED\tYOU\tCOMPUTER\tOUTCOME\tSCORE")
	for _, r := range rounds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d-%d\n",
			r.PlayedAt.Local().Format("2006-01-02 15:04"), r.UserMove, r.ComputerMove, r.Outcome, r.UserScore, r.ComputerScore)
	}
	return w.Flush()
}
