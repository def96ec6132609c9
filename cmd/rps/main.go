package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fentz26/deskkit/internal/rps"
	"github.com/fentz26/deskkit/internal/session"
	"github.com/fentz26/deskkit/internal/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "rps",
	Short:         "Rock-paper-scissors against the computer",
	Long:          `rps plays rock-paper-scissors and keeps a running win tally between sessions. Run without a subcommand for the full-screen game.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

var (
	configPath string
	dataDir    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/deskkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the score file, log and journal")

	rootCmd.AddCommand(playCmd, scoreCmd, resetCmd, historyCmd)
}

// openGame loads the environment and the persisted tally. Callers close
// the returned env when the command finishes.
func openGame() (*rps.Game, *session.Env, error) {
	env, err := session.Open(session.Options{ConfigPath: configPath, DataDir: dataDir, LogPrefix: "rps "})
	if err != nil {
		return nil, nil, err
	}
	game := rps.NewGame(rps.NewScoreFile(env.Config.ScorePath(), env.Logger.Logger), nil, env.Logger.Logger)
	if env.Journal != nil {
		game.SetJournal(env.Journal)
	}
	return game, env, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	game, env, err := openGame()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := tui.NewRPS(game).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
