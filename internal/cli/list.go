package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numkernel/exports"
)

type listedExport struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Doc       string `json:"doc"`
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exported kernels and their signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := exports.All()
			if opts.Format == "json" {
				listed := make([]listedExport, len(all))
				for i, e := range all {
					listed[i] = listedExport{Name: e.Name, Signature: e.Sig.String(), Doc: e.Doc}
				}
				return writeJSON(cmd.OutOrStdout(), listed)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "EXPORT\tSIGNATURE\tDESCRIPTION")
			for _, e := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Sig, e.Doc)
			}
			return tw.Flush()
		},
	}
}
