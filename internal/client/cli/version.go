package cli

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand печатает версию сборки
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// конфигурация не нужна
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.isJSON() {
				return opts.printJSON(opts.Build)
			}
			opts.IO.Printf("gophsync %s\n", opts.Build.Version)
			opts.IO.Printf("Build date: %s\n", opts.Build.BuildDate)
			opts.IO.Printf("Git commit: %s\n", opts.Build.GitCommit)
			return nil
		},
	}
}
