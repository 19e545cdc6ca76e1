// Package cli командная строка gophsync: запуск демона и управление очередью через его API.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsync/internal/client/iocli"
	"github.com/iudanet/gophsync/internal/config"
)

// ValidFormats допустимые форматы вывода
var ValidFormats = []string{"text", "json"}

// BuildInfo версия бинарника, заполняется через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// RootOptions глобальные флаги и зависимости всех команд
type RootOptions struct {
	IO      iocli.IO
	Connect func(baseURL string) Daemon
	Build   BuildInfo

	ConfigPath string
	DaemonURL  string
	Format     string
	LogLevel   string

	cfg config.Client
}

// NewRootCommand создает корневую команду gophsync
func NewRootCommand(io iocli.IO, build BuildInfo) *cobra.Command {
	return newRootCommand(&RootOptions{
		IO:      io,
		Connect: connectDaemon,
		Build:   build,
	})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gophsync",
		Short: "gophsync - offline-first sync engine",
		Long: "gophsync keeps an application usable without network: reads are served from a local cache,\n" +
			"writes are queued durably and replayed against the server when connectivity returns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, err := config.LoadClient(opts.ConfigPath, nil)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.LogLevel != "" {
				if _, err := config.ParseLevel(opts.LogLevel); err != nil {
					return err
				}
				cfg.LogLevel = opts.LogLevel
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (yaml or toml)")
	cmd.PersistentFlags().StringVar(&opts.DaemonURL, "daemon", "", "daemon URL (default http://<listen_addr>)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewFailedCommand(opts))
	cmd.AddCommand(NewConflictsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewRetryCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// daemon возвращает клиент демона по флагу --daemon или адресу из конфигурации
func (o *RootOptions) daemon() Daemon {
	url := o.DaemonURL
	if url == "" {
		url = "http://" + o.cfg.ListenAddr
	}
	return o.Connect(url)
}

func (o *RootOptions) isJSON() bool {
	return o.Format == "json"
}
