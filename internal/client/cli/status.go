package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsync/internal/models"
)

// NewStatusCommand показывает состояние сети, очереди и текущего прохода
func NewStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Show connectivity, queue and sync progress",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := opts.daemon().Status(cmd.Context())
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(status)
			}

			conn := status.Connectivity
			opts.IO.Println("=== Sync Status ===")
			opts.IO.Println()
			opts.IO.Printf("Connectivity: %s", conn.Status)
			if conn.EffectiveType != "" {
				opts.IO.Printf(" (%s)", conn.EffectiveType)
			}
			opts.IO.Println()
			opts.IO.Printf("Last online:  %s\n", ago(conn.LastOnline))
			opts.IO.Println()

			w := opts.table()
			fmt.Fprintln(w, "STATUS\tACTIONS")
			for _, s := range models.AllStatuses {
				fmt.Fprintf(w, "%s\t%d\n", s, status.Counts[s])
			}
			if err := w.Flush(); err != nil {
				return err
			}
			opts.IO.Println()

			p := status.Progress
			switch {
			case status.Draining || p.InProgress:
				opts.IO.Printf("Sync: in progress %d/%d (%d failed)\n", p.Completed, p.Total, p.Failed)
			case status.Counts[models.StatusPending] > 0:
				opts.IO.Printf("Sync: %d action(s) waiting for connectivity\n", status.Counts[models.StatusPending])
			default:
				opts.IO.Println("Sync: idle")
			}

			if n := status.Counts[models.StatusFailed] + status.Counts[models.StatusConflict]; n > 0 {
				opts.IO.Printf("%d action(s) need attention. Run 'gophsync failed' or 'gophsync conflicts'.\n", n)
			}
			return nil
		},
	}
}

// NewCheckCommand немедленно проверяет доступность сервера
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "check",
		Short:         "Probe the server now and print connectivity",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.daemon().Check(cmd.Context())
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(state)
			}

			if state.Status == models.ConnectionOffline {
				opts.IO.Printf("Server unreachable, last online %s\n", ago(state.LastOnline))
				return nil
			}
			opts.IO.Printf("Server reachable: %s\n", state.Status)
			return nil
		},
	}
}
