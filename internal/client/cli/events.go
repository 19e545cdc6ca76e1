package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsync/internal/client/daemon"
)

// NewEventsCommand печатает поток уведомлений демона до прерывания
func NewEventsCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:           "events",
		Short:         "Follow sync notifications, progress and connectivity changes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			received := 0
			return opts.daemon().Stream(cmd.Context(), func(msg daemon.StreamMessage) error {
				if err := opts.printStreamMessage(msg); err != nil {
					return err
				}
				received++
				if limit > 0 && received >= limit {
					return daemon.ErrStopStream
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after n messages (0 = follow)")
	return cmd
}

func (o *RootOptions) printStreamMessage(msg daemon.StreamMessage) error {
	if o.isJSON() {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
		o.IO.Println(string(data))
		return nil
	}

	switch msg.Kind {
	case daemon.StreamEvent:
		if e := msg.Event; e != nil {
			line := fmt.Sprintf("%s  %-12s %s", e.Time.Local().Format("15:04:05"), e.Kind, e.Message)
			if e.ActionID != "" {
				line += "  [" + e.ActionID + "]"
			}
			if e.Retryable {
				line += "  (retry: gophsync retry " + e.ActionID + ")"
			}
			o.IO.Println(line)
		}
	case daemon.StreamConnectivity:
		if c := msg.Connectivity; c != nil {
			o.IO.Printf("network      %s\n", c.Status)
		}
	case daemon.StreamProgress:
		if p := msg.Progress; p != nil && p.Total > 0 {
			o.IO.Printf("progress     %d/%d (%d failed)\n", p.Completed, p.Total, p.Failed)
		}
	}
	return nil
}
