// Package commands implements the herald CLI command structure using Cobra.
package commands

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/petal-labs/herald/cli/config"
	"github.com/petal-labs/herald/cli/keystore"
	"github.com/petal-labs/herald/core"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ClientFactory creates an SDK client for a profile's credential pair.
type ClientFactory func(profile, apiKey, apiSecret string, cfg *config.Config) (*core.Client, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig  ConfigLoader
	newClient   ClientFactory
	newKeystore KeystoreFactory
	stdin       io.Reader
	stdinReader *bufio.Reader
	stdout      io.Writer
	stderr      io.Writer
	cfgFile     string
	profile     string
	jsonOutput  bool
	cfg         *config.Config

	sendTo      []string
	sendFrom    string
	sendText    string
	sendType    string
	sendSubject string
	sendFileID  string
	sendAt      string

	listLimit    int
	listTo       string
	listFrom     string
	listStatus   string
	listStartKey string

	uploadType string
	uploadLink string
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithClientFactory injects a client factory dependency.
func WithClientFactory(factory ClientFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newClient = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:  config.LoadConfig,
		newClient:   defaultClientFactory(),
		newKeystore: keystore.NewKeystore,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "herald",
		Short: "Herald - messaging dispatch SDK and CLI",
		Long: `Herald is a command-line interface for the Herald messaging API.

Use herald to manage credentials, send SMS/LMS/MMS/RCS messages, upload
attachments, and check your account balance.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.herald/config.yaml)")
	root.PersistentFlags().StringVar(&a.profile, "profile", "", "account profile name (default is \"default\")")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")

	root.AddCommand(a.newSendCommand())
	root.AddCommand(a.newMessagesCommand())
	root.AddCommand(a.newBalanceCommand())
	root.AddCommand(a.newUploadCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Apply the config default if the flag is not set.
	if a.profile == "" && cfg.DefaultProfile != "" {
		a.profile = cfg.DefaultProfile
	}

	return nil
}

// profileName returns the effective profile name.
func (a *App) profileName() string {
	if a.profile != "" {
		return a.profile
	}
	return "default"
}

// Execute runs the default app root command.
func Execute() error {
	return NewApp().Execute()
}

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}
