package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-numkernel/bench"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	Filter   string
	Baseline string
}

// newBenchRunner is replaced in tests to avoid real timing.
var newBenchRunner = func() *bench.Runner { return &bench.Runner{} }

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the kernels natively",
		Long: `Benchmark the engine benchmark cases natively and print the results in
"go test -bench" format. With --baseline, also read the engine's benchmark
output and print how much slower each engine variant is.

Example:
  go test -run NONE -bench Arithmetic ./exec > wagon.txt
  numkernel bench --baseline wagon.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "regexp selecting case names")
	cmd.Flags().StringVar(&opts.Baseline, "baseline", "", "go test -bench output to compare against")

	return cmd
}

func runBench(cmd *cobra.Command, opts *BenchOptions) error {
	cases, err := bench.Select(opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad --filter", err)
	}
	if len(cases) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no cases match %q", opts.Filter))
	}

	runner := newBenchRunner()
	runner.Logger = opts.Logger

	results, err := runner.Run(cases)
	if err != nil {
		return WrapExitError(ExitCommandError, "benchmark failed", err)
	}
	out := cmd.OutOrStdout()
	if err := bench.WriteGoFormat(out, results); err != nil {
		return err
	}
	if opts.Baseline == "" {
		return nil
	}

	f, err := os.Open(opts.Baseline)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open baseline", err)
	}
	defer f.Close()

	comps, err := bench.Compare(results, f)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to compare", err)
	}
	if len(comps) == 0 {
		_, err = fmt.Fprintln(out, "\nno baseline benchmarks match the native cases")
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return bench.WriteComparison(out, comps)
}
