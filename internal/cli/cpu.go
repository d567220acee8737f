package cli

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numkernel/internal/cpuinfo"
)

// NewCPUCommand creates the cpu command.
func NewCPUCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Print host CPU features relevant to float comparisons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cpuinfo.Detect()
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return r.WriteText(cmd.OutOrStdout())
		},
	}
}
