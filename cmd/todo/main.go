package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fentz26/deskkit/internal/audit"
	"github.com/fentz26/deskkit/internal/session"
	"github.com/fentz26/deskkit/internal/todo"
	"github.com/fentz26/deskkit/internal/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Two-list to-do manager",
	Long:          `todo keeps pending and completed tasks in a JSON file. Run without a subcommand for the full-screen editor.`,
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
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the task file, log and journal")

	rootCmd.AddCommand(addCmd, listCmd, editCmd, doneCmd, reopenCmd, rmCmd, logCmd)
}

// openStore loads the environment and the task file, attaching the audit
// recorder when the journal is available.
func openStore() (*todo.Store, *session.Env, error) {
	env, err := session.Open(session.Options{ConfigPath: configPath, DataDir: dataDir, LogPrefix: "todo "})
	if err != nil {
		return nil, nil, err
	}
	store := todo.Open(env.Config.TaskPath(), env.Logger.Logger)
	if env.Journal != nil {
		store.SetRecorder(audit.NewRecorder(env.Journal))
	}
	return store, env, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	store, env, err := openStore()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := tui.NewTodo(store).Run(); err != nil {
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
