package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/petal-labs/herald/core"
)

// outputJSON pretty-prints a value to stdout.
func (a *App) outputJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errorPayload is the JSON shape for failed commands.
type errorPayload struct {
	Error  string               `json:"error"`
	Code   string               `json:"code,omitempty"`
	Status int                  `json:"status,omitempty"`
	Failed []core.FailedMessage `json:"failedMessages,omitempty"`
}

// handleAPIError reports an SDK error to the user and maps it to an exit
// code: validation problems exit 1, provider rejections exit 2, transport
// failures exit 3.
func (a *App) handleAPIError(err error) error {
	var notReceived *core.MessageNotReceivedError
	if errors.As(err, &notReceived) {
		if a.jsonOutput {
			_ = a.outputJSON(errorPayload{
				Error:  notReceived.Error(),
				Failed: notReceived.Failed,
			})
		} else {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			for _, f := range notReceived.Failed {
				fmt.Fprintf(a.stderr, "  %s: %s (%s)\n", f.To, f.ErrorMessage, f.ErrorCode)
			}
		}
		return exitWithCode(ExitProvider, err)
	}

	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		if a.jsonOutput {
			_ = a.outputJSON(errorPayload{
				Error:  apiErr.Message,
				Code:   apiErr.Code,
				Status: apiErr.Status,
			})
		} else {
			fmt.Fprintf(a.stderr, "Error: %s\n", apiErr.Message)
			if apiErr.Code != "" {
				fmt.Fprintf(a.stderr, "  Code: %s\n", apiErr.Code)
			}
		}
		switch {
		case errors.Is(err, core.ErrNetwork):
			return exitWithCode(ExitNetwork, err)
		case errors.Is(err, core.ErrInvalidCredentials):
			return exitWithCode(ExitValidation, err)
		default:
			return exitWithCode(ExitProvider, err)
		}
	}

	if errors.Is(err, core.ErrNoMessages) || errors.Is(err, core.ErrInvalidCredentials) {
		if a.jsonOutput {
			_ = a.outputJSON(errorPayload{Error: err.Error()})
		} else {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return exitWithCode(ExitValidation, err)
	}

	if a.jsonOutput {
		_ = a.outputJSON(errorPayload{Error: err.Error()})
	} else {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return exitWithCode(ExitProvider, err)
}
