package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/petal-labs/herald/core"
)

func (a *App) newSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one or more messages",
		Long: `Send messages through the configured account profile.

A single recipient is dispatched as an individual send; multiple
recipients are dispatched as one batch. Rejected recipients in a batch
are reported without failing the accepted ones.

Examples:
  herald send --to 15551230001 --text "hello"
  herald send --to 15551230001 --to 15551230002 --text "hello"
  herald send --to 15551230001 --text "later" --at 2026-09-01T09:00:00Z
  herald send --to 15551230001 --text "hello" --json`,
		RunE: a.runSend,
	}

	cmd.Flags().StringSliceVar(&a.sendTo, "to", nil, "Recipient number (repeatable)")
	cmd.Flags().StringVar(&a.sendFrom, "from", "", "Sender number (defaults to the profile's from)")
	cmd.Flags().StringVar(&a.sendText, "text", "", "Message text")
	cmd.Flags().StringVar(&a.sendType, "type", "SMS", "Message type (SMS, LMS, MMS, RCS)")
	cmd.Flags().StringVar(&a.sendSubject, "subject", "", "Subject line for LMS/MMS")
	cmd.Flags().StringVar(&a.sendFileID, "file-id", "", "Attachment file ID for MMS/RCS")
	cmd.Flags().StringVar(&a.sendAt, "at", "", "Scheduled dispatch time (RFC 3339)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func (a *App) runSend(cmd *cobra.Command, args []string) error {
	from := a.sendFrom
	if from == "" {
		if pc := a.cfg.GetProfile(a.profileName()); pc != nil {
			from = pc.From
		}
	}
	if from == "" {
		return exitWithCode(ExitValidation,
			fmt.Errorf("sender number required: pass --from or set 'from' in the profile config"))
	}

	var scheduledAt time.Time
	if a.sendAt != "" {
		at, err := time.Parse(time.RFC3339, a.sendAt)
		if err != nil {
			return exitWithCode(ExitValidation, fmt.Errorf("invalid --at value: %w", err))
		}
		scheduledAt = at
	}

	client, err := a.resolveClient()
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	builder := client.Send()
	for _, to := range a.sendTo {
		builder.Message(core.Message{
			To:      to,
			From:    from,
			Text:    a.sendText,
			Type:    core.MessageType(a.sendType),
			Subject: a.sendSubject,
			FileID:  a.sendFileID,
		})
	}
	if !scheduledAt.IsZero() {
		builder.ScheduleAt(scheduledAt)
	}

	res, err := builder.Execute(cmd.Context())
	if err != nil {
		return a.handleAPIError(err)
	}

	if a.jsonOutput {
		return a.outputJSON(res)
	}

	count := res.GroupInfo.Count
	accepted := count.Total - len(res.FailedMessages)
	fmt.Fprintf(a.stdout, "Group %s: %d accepted, %d rejected\n",
		res.GroupInfo.GroupID, accepted, len(res.FailedMessages))
	for _, f := range res.FailedMessages {
		fmt.Fprintf(a.stderr, "  %s: %s (%s)\n", f.To, f.ErrorMessage, f.ErrorCode)
	}
	return nil
}
