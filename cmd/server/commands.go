package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iudanet/gophsync/internal/config"
	"github.com/iudanet/gophsync/internal/server"
	"github.com/iudanet/gophsync/pkg/api"
)

// rootOptions общие флаги команд сервера
type rootOptions struct {
	configPath string
	addr       string
	dbPath     string
	logLevel   string

	cfg config.Server
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "gophsync-server",
		Short:         "Reference backend for the gophsync engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer(opts.configPath, nil)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = opts.addr
			}
			if flags.Changed("db") {
				cfg.DBPath = opts.dbPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (yaml or toml)")
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", config.DefaultServerAddr, "listen address")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", config.DefaultServerDBPath, "SQLite database path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(
		newServeCommand(opts),
		newTokenCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// open собирает сервер; логи идут в stderr, чтобы не смешиваться с выводом команд
func (o *rootOptions) open(cmd *cobra.Command) (*server.Server, error) {
	logger := config.NewLogger(os.Stderr, o.cfg.LogLevel)
	return server.New(cmd.Context(), o.cfg, logger, Version)
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer srv.Close()

			return srv.Run(cmd.Context())
		},
	}
}

func newTokenCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
	}

	var (
		subject string
		ttl     time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer srv.Close()

			token, record, err := srv.IssueToken(cmd.Context(), subject, ttl)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(api.TokenResponse{
				AccessToken: token,
				TokenID:     record.ID,
				ExpiresIn:   int64(record.ExpiresAt.Sub(record.CreatedAt).Seconds()),
			})
		},
	}
	issue.Flags().StringVar(&subject, "subject", "", "token subject (device or user name)")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default from config)")
	_ = issue.MarkFlagRequired("subject")

	list := &cobra.Command{
		Use:   "list",
		Short: "List issued tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer srv.Close()

			tokens, err := srv.Tokens(cmd.Context())
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tokens issued.")
				return nil
			}

			now := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSUBJECT\tISSUED\tEXPIRES\tSTATE")
			for _, tok := range tokens {
				state := "active"
				switch {
				case tok.RevokedAt != nil:
					state = "revoked"
				case !tok.IsActive(now):
					state = "expired"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					tok.ID, tok.Subject,
					humanize.Time(tok.CreatedAt), humanize.Time(tok.ExpiresAt), state)
			}
			return tw.Flush()
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke <token-id>",
		Short: "Revoke an issued token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer srv.Close()

			if err := srv.RevokeToken(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Token %s revoked\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(issue, list, revoke)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// конфигурация не нужна
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gophsync-server %s\n", Version)
			fmt.Fprintf(out, "Build date: %s\n", BuildDate)
			fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
		},
	}
}
