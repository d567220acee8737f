package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-numkernel/harness"
)

// WorkersEnvVar sets the default for check --workers.
const WorkersEnvVar = "NUMKERNEL_WORKERS"

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Workers int
}

type checkedCase struct {
	Name  string `json:"name"`
	Pass  bool   `json:"pass"`
	Got   string `json:"got,omitempty"`
	Want  string `json:"want"`
	Error string `json:"error,omitempty"`
}

type checkedSuite struct {
	Suite  string        `json:"suite"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Cases  []checkedCase `json:"cases"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite.yaml>...",
		Short: "Evaluate YAML case suites against the kernels",
		Long: `Evaluate every case in one or more suite files and report mismatches.

Exits with status 1 if any case fails and 2 if a suite cannot be loaded.

Example:
  numkernel check harness/testdata/rust_basic.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", defaultWorkers(),
		"cases evaluated concurrently (0 = GOMAXPROCS, env "+WorkersEnvVar+")")

	return cmd
}

func defaultWorkers() int {
	n, err := strconv.Atoi(os.Getenv(WorkersEnvVar))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, paths []string) error {
	failed := 0
	var suites []checkedSuite
	for _, path := range paths {
		s, err := harness.LoadSuite(path)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load suite", err)
		}
		opts.Logger.Debug("loaded suite", zap.String("path", path), zap.Int("cases", len(s.Cases)))

		report, err := harness.Run(cmd.Context(), s, harness.Options{
			Workers: opts.Workers,
			Logger:  opts.Logger,
		})
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to run suite", err)
		}
		failed += report.Failed()

		if opts.Format == "json" {
			suites = append(suites, toCheckedSuite(report))
			continue
		}
		if err := report.WriteText(cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	if opts.Format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), suites); err != nil {
			return err
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	return nil
}

func toCheckedSuite(r *harness.Report) checkedSuite {
	out := checkedSuite{Suite: r.Suite, Passed: r.Passed(), Failed: r.Failed()}
	for _, res := range r.Results {
		c := checkedCase{Name: res.Case.Name, Pass: res.Pass, Want: res.Want.String()}
		if res.Err != nil {
			c.Error = res.Err.Error()
		} else {
			c.Got = res.Got.String()
		}
		out.Cases = append(out.Cases, c)
	}
	return out
}
