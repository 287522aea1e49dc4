package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/herald/core"
)

func (a *App) newMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Inspect dispatched messages",
	}

	cmd.AddCommand(a.newMessagesListCommand())

	return cmd
}

func (a *App) newMessagesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently dispatched messages",
		Long: `List dispatched messages, newest first.

Examples:
  herald messages list
  herald messages list --limit 50 --status COMPLETE
  herald messages list --to 15551230001 --json`,
		RunE: a.runMessagesList,
	}

	cmd.Flags().IntVar(&a.listLimit, "limit", 20, "Maximum number of messages to return")
	cmd.Flags().StringVar(&a.listTo, "to", "", "Filter by recipient number")
	cmd.Flags().StringVar(&a.listFrom, "from", "", "Filter by sender number")
	cmd.Flags().StringVar(&a.listStatus, "status", "", "Filter by dispatch status")
	cmd.Flags().StringVar(&a.listStartKey, "start-key", "", "Pagination key from a previous page")

	return cmd
}

func (a *App) runMessagesList(cmd *cobra.Command, args []string) error {
	client, err := a.resolveClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	list, err := client.ListMessages(cmd.Context(), &core.MessageListFilter{
		To:       a.listTo,
		From:     a.listFrom,
		Status:   a.listStatus,
		Limit:    a.listLimit,
		StartKey: a.listStartKey,
	})
	if err != nil {
		return a.handleAPIError(err)
	}

	if a.jsonOutput {
		return a.outputJSON(list)
	}

	if len(list.Messages) == 0 {
		fmt.Fprintln(a.stdout, "No messages found.")
		return nil
	}

	for _, m := range list.Messages {
		fmt.Fprintf(a.stdout, "%s  %-4s  %s -> %s  %s\n",
			m.MessageID, m.Type, m.From, m.To, m.Status)
	}
	if list.NextKey != "" {
		fmt.Fprintf(a.stdout, "\nNext page: --start-key %s\n", list.NextKey)
	}
	return nil
}
