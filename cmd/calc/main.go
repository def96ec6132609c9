package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fentz26/deskkit/internal/calc"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "calc",
	Short:         "Simple four-function calculator",
	Long:          `calc prompts for two numbers and an operation, then prints the result.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	err := calc.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	// Input conditions were already printed; they are not failures.
	if calc.IsReported(err) {
		return nil
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
