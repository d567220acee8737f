package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-numkernel/exports"
)

// InvokeOptions holds flags for the invoke command.
type InvokeOptions struct {
	*RootOptions
	Bits bool
}

type invokeResult struct {
	Export string `json:"export"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	Bits   string `json:"bits"`
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvokeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoke <export> [args...]",
		Short: "Call an export with typed arguments",
		Long: `Call an export by name. Arguments are parsed using the export's parameter
types: integers in any strconv base, floats as decimal, hex float, nan, inf,
or raw IEEE bits written as bits:0x....

Example:
  numkernel invoke loopedArithmeticF32Benchmark 10 10.0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&opts.Bits, "bits", false, "also print the raw result bits")

	return cmd
}

func runInvoke(cmd *cobra.Command, opts *InvokeOptions, name string, rawArgs []string) error {
	e, ok := exports.Lookup(name)
	if !ok {
		return WrapExitError(ExitCommandError, "invoke failed",
			fmt.Errorf("%w: %q (see numkernel list)", exports.ErrUnknownExport, name))
	}
	args, err := e.ParseArgs(rawArgs)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	v, err := e.CallValues(args...)
	if err != nil {
		return WrapExitError(ExitCommandError, "invoke failed", err)
	}
	opts.Logger.Debug("invoked export",
		zap.String("export", name),
		zap.Strings("args", rawArgs),
		zap.Stringer("result", v))

	bits := fmt.Sprintf("%#x", v.Bits)
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), invokeResult{
			Export: name,
			Type:   v.Type.String(),
			Value:  v.String(),
			Bits:   bits,
		})
	}
	if opts.Bits {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s bits %s)\n", v, v.Type, bits)
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
	return err
}
