package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/gophsync/internal/client/app"
	"github.com/iudanet/gophsync/internal/config"
)

type serveOptions struct {
	serverURL        string
	dbPath           string
	listenAddr       string
	token            string
	strategy         string
	promptPassphrase bool
}

// NewServeCommand запускает демон: локальный прокси перед сервером и управляющий API
func NewServeCommand(opts *RootOptions) *cobra.Command {
	so := &serveOptions{}

	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Run the sync daemon",
		Long:          "Run the local proxy in front of the server together with the queue, cache and control API.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := so.apply(opts, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(os.Stderr, cfg.LogLevel)
			a, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	so.bind(cmd.Flags())
	return cmd
}

func (so *serveOptions) bind(flags *pflag.FlagSet) {
	flags.StringVar(&so.serverURL, "server", "", "server URL")
	flags.StringVar(&so.dbPath, "db", "", "path to local database")
	flags.StringVar(&so.listenAddr, "listen", "", "daemon listen address")
	flags.StringVar(&so.token, "token", "", "bearer token forwarded to the server")
	flags.StringVar(&so.strategy, "strategy", "", "default conflict strategy (SERVER_WINS|CLIENT_WINS|MERGE|MANUAL)")
	flags.BoolVar(&so.promptPassphrase, "passphrase-prompt", false, "ask for the store passphrase")
}

// apply накладывает явно заданные флаги на загруженную конфигурацию
func (so *serveOptions) apply(opts *RootOptions, flags *pflag.FlagSet) (config.Client, error) {
	cfg := opts.cfg

	if flags.Changed("server") {
		cfg.ServerURL = so.serverURL
	}
	if flags.Changed("db") {
		cfg.DBPath = so.dbPath
	}
	if flags.Changed("listen") {
		cfg.ListenAddr = so.listenAddr
	}
	if flags.Changed("token") {
		cfg.Token = so.token
	}
	if flags.Changed("strategy") {
		cfg.ConflictStrategy = so.strategy
	}

	if so.promptPassphrase {
		passphrase, err := opts.IO.ReadPassword("Store passphrase: ")
		if err != nil {
			return cfg, fmt.Errorf("failed to read passphrase: %w", err)
		}
		cfg.Passphrase = passphrase
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
