package main

import (
	"fmt"

	"github.com/fentz26/deskkit/internal/rps"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [rock|paper|scissors]",
	Short: "Play a single round",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the win tally",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset both scores to zero",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runPlay(cmd *cobra.Command, args []string) error {
	move, err := rps.ParseMove(args[0])
	if err != nil {
		return err
	}
	game, env, err := openGame()
	if err != nil {
		return err
	}
	defer env.Close()

	round, err := game.Play(cmd.Context(), move)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, round.Message())
	fmt.Fprintf(out, "Score — %s\n", round.Score)
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	game, env, err := openGame()
	if err != nil {
		return err
	}
	defer env.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "High Scores — %s\n", game.Score())
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	game, env, err := openGame()
	if err != nil {
		return err
	}
	defer env.Close()

	score := game.Reset(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "Scores reset. %s\n", score)
	return nil
}
