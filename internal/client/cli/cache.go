package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewCacheCommand группа команд офлайн кеша чтения
func NewCacheCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the offline read cache",
	}

	cmd.AddCommand(newCacheListCommand(opts))
	cmd.AddCommand(newCacheGetCommand(opts))
	cmd.AddCommand(newCacheSweepCommand(opts))
	cmd.AddCommand(newCacheClearCommand(opts))
	return cmd
}

func newCacheListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List live cache entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := opts.daemon().CacheEntries(cmd.Context())
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(entries)
			}
			if len(entries) == 0 {
				opts.IO.Println("Cache is empty.")
				return nil
			}

			var total uint64
			w := opts.table()
			fmt.Fprintln(w, "KEY\tSIZE\tCACHED\tEXPIRES")
			for _, e := range entries {
				size := uint64(len(e.Data))
				total += size

				expires := "never"
				if e.ExpiresAt != 0 {
					expires = humanize.Time(time.UnixMilli(e.ExpiresAt))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.Key, humanize.Bytes(size), ago(time.UnixMilli(e.Timestamp)), expires)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			opts.IO.Println()
			opts.IO.Printf("Total: %d entries, %s\n", len(entries), humanize.Bytes(total))
			return nil
		},
	}
}

func newCacheGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <key>",
		Short:         "Print a cached response, e.g. /api/v1/dossiers/42",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !strings.HasPrefix(key, "/") {
				key = "/" + key
			}

			entry, err := opts.daemon().CacheEntry(cmd.Context(), key)
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(entry)
			}
			opts.IO.Println(indentJSON(entry.Data))
			return nil
		},
	}
}

func newCacheSweepCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sweep",
		Short:         "Remove expired cache entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := opts.daemon().SweepCache(cmd.Context())
			if err != nil {
				return err
			}
			if opts.isJSON() {
				return opts.printJSON(map[string]int{"removed": removed})
			}
			opts.IO.Printf("Removed %d expired entries\n", removed)
			return nil
		},
	}
}

func newCacheClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear",
		Short:         "Remove every cache entry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.daemon().ClearCache(cmd.Context()); err != nil {
				return err
			}
			opts.IO.Println("✓ Cache cleared")
			return nil
		},
	}
}
