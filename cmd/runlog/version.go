package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/raphi011/runlog/internal/output"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			out.Fields(
				"version", version,
				"commit", commit,
				"built", date,
				"go", runtime.Version(),
			)
			return nil
		},
	}
}
