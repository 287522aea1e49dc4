package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Long: `Show the remaining cash balance and bonus points for the profile.

Examples:
  herald balance
  herald balance --profile staging --json`,
		RunE: a.runBalance,
	}
}

func (a *App) runBalance(cmd *cobra.Command, args []string) error {
	client, err := a.resolveClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	balance, err := client.Balance(cmd.Context())
	if err != nil {
		return a.handleAPIError(err)
	}

	if a.jsonOutput {
		return a.outputJSON(balance)
	}

	fmt.Fprintf(a.stdout, "Balance: %.2f\n", balance.Balance)
	fmt.Fprintf(a.stdout, "Points:  %.2f\n", balance.Point)
	return nil
}
