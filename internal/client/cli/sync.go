package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gophsync/internal/client/daemon"
	"github.com/iudanet/gophsync/internal/models"
)

// NewSyncCommand запускает проход синхронизации и показывает прогресс из потока событий демона
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sync",
		Short:         "Replay queued actions against the server now",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d := opts.daemon()

			if !opts.isJSON() {
				opts.IO.Println("=== Synchronization ===")
			}

			streamCtx, stopStream := context.WithCancel(ctx)
			defer stopStream()

			g, gctx := errgroup.WithContext(streamCtx)
			g.Go(func() error {
				return d.Stream(gctx, func(msg daemon.StreamMessage) error {
					if msg.Kind == daemon.StreamProgress && msg.Progress != nil && !opts.isJSON() {
						opts.renderProgress(*msg.Progress)
					}
					return nil
				})
			})

			progress, err := d.Drain(ctx)
			stopStream()
			if streamErr := g.Wait(); streamErr != nil && err == nil {
				// поток событий только для отображения, итог берем из ответа Drain
				opts.IO.Printf("warning: progress stream: %v\n", streamErr)
			}
			if err != nil {
				return fmt.Errorf("synchronization failed: %w", err)
			}

			if opts.isJSON() {
				return opts.printJSON(progress)
			}
			if opts.IO.IsTerminal() {
				opts.IO.Println()
			}

			synced := progress.Completed - progress.Failed
			switch {
			case progress.Total == 0:
				opts.IO.Println("Nothing to sync.")
			case progress.Failed == 0:
				opts.IO.Printf("✓ Synced %d action(s)\n", synced)
			default:
				opts.IO.Printf("Synced %d of %d action(s), %d failed. Run 'gophsync failed' for details.\n",
					synced, progress.Total, progress.Failed)
			}
			return nil
		},
	}
}

// renderProgress в терминале перерисовывает строку, иначе пишет строку на каждое обновление
func (o *RootOptions) renderProgress(p models.SyncProgress) {
	if p.Total == 0 {
		return
	}
	line := fmt.Sprintf("Syncing %d/%d", p.Completed, p.Total)
	if p.Failed > 0 {
		line += fmt.Sprintf(" (%d failed)", p.Failed)
	}
	if o.IO.IsTerminal() {
		o.IO.Printf("\r\033[K%s", line)
		return
	}
	o.IO.Println(line)
}
