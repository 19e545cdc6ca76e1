package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophsync/internal/client/conflict"
	"github.com/iudanet/gophsync/internal/models"
)

// NewQueueCommand выводит действия очереди, опционально по статусу
func NewQueueCommand(opts *RootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:           "queue",
		Short:         "List queued actions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := models.ActionStatus(strings.ToUpper(status))
			if s != "" && !s.IsValid() {
				return fmt.Errorf("unknown status %q: must be one of %v", status, models.AllStatuses)
			}
			return listActions(cmd.Context(), opts, s)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status")
	return cmd
}

// NewFailedCommand выводит действия, исчерпавшие попытки или отклоненные сервером
func NewFailedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "failed",
		Short:         "List failed actions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listActions(cmd.Context(), opts, models.StatusFailed)
		},
	}
}

// NewConflictsCommand выводит действия, ожидающие ручного разрешения конфликта
func NewConflictsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "conflicts",
		Short:         "List actions waiting for manual conflict resolution",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listActions(cmd.Context(), opts, models.StatusConflict)
		},
	}
}

func listActions(ctx context.Context, opts *RootOptions, status models.ActionStatus) error {
	actions, err := opts.daemon().Actions(ctx, status)
	if err != nil {
		return err
	}
	if opts.isJSON() {
		return opts.printJSON(actions)
	}

	if len(actions) == 0 {
		if status == "" {
			opts.IO.Println("Queue is empty.")
		} else {
			opts.IO.Printf("No %s actions.\n", status)
		}
		return nil
	}

	w := opts.table()
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tRETRIES\tENQUEUED\tERROR")
	for _, a := range actions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			a.ID, a.Type, a.Status, a.RetryCount, ago(a.EnqueuedAt()), orDash(truncate(a.Error, 48)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	opts.IO.Println()
	opts.IO.Printf("Total: %d action(s)\n", len(actions))
	return nil
}

// NewShowCommand показывает одно действие с полезной нагрузкой
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <action-id>",
		Short:         "Show a queued action",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := opts.daemon().Action(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(action)
			}

			opts.IO.Printf("ID:        %s\n", action.ID)
			opts.IO.Printf("Type:      %s (%s)\n", action.Type, action.Type.Label())
			opts.IO.Printf("Status:    %s\n", action.Status)
			opts.IO.Printf("Enqueued:  %s (%s)\n", action.EnqueuedAt().Format("2006-01-02 15:04:05"), ago(action.EnqueuedAt()))
			opts.IO.Printf("Retries:   %d/%d\n", action.RetryCount, models.MaxRetries)
			if action.LocalID != "" {
				opts.IO.Printf("Local ID:  %s\n", action.LocalID)
			}
			if action.ServerID != "" {
				opts.IO.Printf("Server ID: %s\n", action.ServerID)
			}
			if action.Resolution != "" {
				opts.IO.Printf("Resolved:  %s\n", action.Resolution)
			}
			if action.Error != "" {
				opts.IO.Printf("Error:     %s (%s)\n", action.Error, orDash(string(action.ErrorKind)))
			}
			if len(action.ConflictFields) > 0 {
				opts.IO.Printf("Conflicts: %s\n", strings.Join(action.ConflictFields, ", "))
			}
			opts.IO.Println()
			opts.IO.Println("Payload:")
			opts.IO.Println(indentJSON(action.Payload))
			return nil
		},
	}
}

// NewRetryCommand возвращает FAILED и CONFLICT действия в очередь
func NewRetryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "retry <action-id>...",
		Short:         "Re-queue failed or conflicted actions",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := opts.daemon()

			var errs []error
			for _, id := range args {
				action, err := d.Retry(cmd.Context(), id)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", id, err))
					continue
				}
				opts.IO.Printf("✓ %s re-queued (%s)\n", action.ID, action.Status)
			}
			return errors.Join(errs...)
		},
	}
}

// NewResolveCommand разрешает конфликт действия выбранной стратегией
func NewResolveCommand(opts *RootOptions) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:           "resolve <action-id>",
		Short:         "Resolve a conflicted action",
		Long:          "Fetch the current server version of the entity and resolve the conflict with the given strategy.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var s conflict.Strategy
			if strategy != "" {
				parsed, err := conflict.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				s = parsed
			}

			result, err := opts.daemon().Resolve(cmd.Context(), args[0], s)
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(result)
			}

			if result == nil {
				opts.IO.Println("Server no longer diverges, action re-queued as is.")
				return nil
			}

			opts.IO.Printf("Strategy: %s\n", result.Strategy)
			var fields []string
			for _, c := range result.Conflicts {
				fields = append(fields, c.Fields...)
			}
			if len(fields) > 0 {
				opts.IO.Printf("Conflicting fields: %s\n", strings.Join(fields, ", "))
			}
			if !result.Resolved {
				opts.IO.Printf("Unresolved fields: %s\n", strings.Join(result.UnresolvedFields, ", "))
				opts.IO.Println("Action stays in CONFLICT. Pick another strategy to proceed.")
				return nil
			}
			opts.IO.Println("✓ Conflict resolved")
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "SERVER_WINS|CLIENT_WINS|MERGE|MANUAL (default: daemon default)")
	return cmd
}

// NewClearCommand удаляет все действия из очереди
func NewClearCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:           "clear",
		Short:         "Delete every queued action",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := opts.IO.ReadInput("Delete all queued actions, including unsynced ones? [y/N]: ")
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					opts.IO.Println("Cancelled.")
					return nil
				}
			}

			if err := opts.daemon().ClearQueue(cmd.Context()); err != nil {
				return err
			}
			opts.IO.Println("✓ Queue cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
