package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/herald/cli/keystore"
)

func (a *App) newKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API credentials",
		Long:  `Manage API credential pairs for account profiles. Credentials are stored encrypted on disk.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <profile>",
		Short: "Store the credential pair for a profile",
		Long:  `Store the API key and secret for a profile. Both values are prompted without echo.`,
		Args:  cobra.ExactArgs(1),
		RunE:  a.runKeysSet,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored credentials",
		Long:  `List stored credential entries. Only entry names are shown, never values.`,
		RunE:  a.runKeysList,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <profile>",
		Short: "Delete the credential pair for a profile",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runKeysDelete,
	})

	return cmd
}

// readSecret prompts for a value, hiding input when stdin is a terminal.
func (a *App) readSecret(prompt string) (string, error) {
	fmt.Fprint(a.stdout, prompt)

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		fmt.Fprintln(a.stdout) // Newline after hidden input
		return string(raw), nil
	}

	// Fallback for non-terminal (e.g., piped input). The reader persists
	// across prompts so buffered lines are not lost between reads.
	if a.stdinReader == nil {
		a.stdinReader = bufio.NewReader(a.stdin)
	}
	line, err := a.stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) runKeysSet(cmd *cobra.Command, args []string) error {
	profile := args[0]

	apiKey, err := a.readSecret(fmt.Sprintf("Enter API key for %s: ", profile))
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	apiSecret, err := a.readSecret(fmt.Sprintf("Enter API secret for %s: ", profile))
	if err != nil {
		return fmt.Errorf("failed to read API secret: %w", err)
	}
	if apiSecret == "" {
		return fmt.Errorf("API secret cannot be empty")
	}

	ks, err := a.newKeystore()
	if err != nil {
		return fmt.Errorf("failed to open keystore: %w", err)
	}

	if err := ks.Set(profile+".api_key", apiKey); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}
	if err := ks.Set(profile+".api_secret", apiSecret); err != nil {
		return fmt.Errorf("failed to store API secret: %w", err)
	}

	fmt.Fprintf(a.stdout, "Credentials for %s stored successfully.\n", profile)
	return nil
}

func (a *App) runKeysList(cmd *cobra.Command, args []string) error {
	ks, err := a.newKeystore()
	if err != nil {
		return fmt.Errorf("failed to open keystore: %w", err)
	}

	names, err := ks.List()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if len(names) == 0 {
		fmt.Fprintln(a.stdout, "No credentials stored.")
		return nil
	}

	fmt.Fprintln(a.stdout, "Stored entries:")
	for _, name := range names {
		fmt.Fprintf(a.stdout, "  - %s\n", name)
	}

	return nil
}

func (a *App) runKeysDelete(cmd *cobra.Command, args []string) error {
	profile := args[0]

	ks, err := a.newKeystore()
	if err != nil {
		return fmt.Errorf("failed to open keystore: %w", err)
	}

	keyErr := ks.Delete(profile + ".api_key")
	secretErr := ks.Delete(profile + ".api_secret")
	if isKeyNotFound(keyErr) && isKeyNotFound(secretErr) {
		return fmt.Errorf("no credentials stored for %s", profile)
	}
	if keyErr != nil && !isKeyNotFound(keyErr) {
		return fmt.Errorf("failed to delete API key: %w", keyErr)
	}
	if secretErr != nil && !isKeyNotFound(secretErr) {
		return fmt.Errorf("failed to delete API secret: %w", secretErr)
	}

	fmt.Fprintf(a.stdout, "Credentials for %s deleted.\n", profile)
	return nil
}

func isKeyNotFound(err error) bool {
	var notFound *keystore.ErrKeyNotFound
	return errors.As(err, &notFound)
}
