package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajroetker/go-numkernel/bench"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(&RootOptions{Logger: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "numkernel", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "invoke", "check", "bench", "cpu"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestListGolden(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list", []byte(out))
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list")
	require.NoError(t, err)

	var listed []listedExport
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 4)
	assert.Equal(t, "x2_plus_y2_minus_13", listed[3].Name)
	assert.Equal(t, "(i64, i64) -> i64", listed[3].Signature)
}

func TestInvoke(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"invoke", "x2_plus_y2_minus_13", "0", "0"}, "244\n"},
		{[]string{"invoke", "loopedArithmeticI64Benchmark", "10", "10"}, "2095579\n"},
		{[]string{"invoke", "loopedArithmeticF32Benchmark", "10", "10.0"}, "384871.97\n"},
		{[]string{"invoke", "--bits", "loopedArithmeticF64Benchmark", "0", "1"}, "3 (f64 bits 0x4008000000000000)\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestInvokeJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "invoke", "loopedArithmeticF32Benchmark", "0", "1")
	require.NoError(t, err)

	var res invokeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, invokeResult{
		Export: "loopedArithmeticF32Benchmark",
		Type:   "f32",
		Value:  "3",
		Bits:   "0x40400000",
	}, res)
}

func TestInvokeErrors(t *testing.T) {
	_, err := execute(t, "invoke", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown export")

	_, err = execute(t, "invoke", "x2_plus_y2_minus_13", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "takes 2, got 1")

	_, err = execute(t, "invoke", "x2_plus_y2_minus_13", "1", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid arguments")
}

func TestCheckPasses(t *testing.T) {
	out, err := execute(t, "check", "--workers", "2", "../../harness/testdata/rust_basic.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "suite rust-basic: 17 cases, 17 passed, 0 failed")
}

func TestCheckFailureExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	suite := "name: bad\ncases:\n  - {name: off by one, export: x2_plus_y2_minus_13, args: ['3', '4'], want: '14'}\n"
	require.NoError(t, os.WriteFile(path, []byte(suite), 0o644))

	out, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL off by one")
	assert.Contains(t, err.Error(), "1 case(s) failed")
}

func TestCheckJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "check", "../../harness/testdata/rust_basic.yaml")
	require.NoError(t, err)

	var suites []checkedSuite
	require.NoError(t, json.Unmarshal([]byte(out), &suites))
	require.Len(t, suites, 1)
	assert.Equal(t, 17, suites[0].Passed)
	assert.Equal(t, "244", suites[0].Cases[0].Got)
}

func TestCheckMissingSuite(t *testing.T) {
	_, err := execute(t, "check", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDefaultWorkers(t *testing.T) {
	t.Setenv(WorkersEnvVar, "3")
	assert.Equal(t, 3, defaultWorkers())

	t.Setenv(WorkersEnvVar, "lots")
	assert.Equal(t, 0, defaultWorkers())

	t.Setenv(WorkersEnvVar, "")
	assert.Equal(t, 0, defaultWorkers())
}

func stubBenchRunner(t *testing.T) {
	t.Helper()
	orig := newBenchRunner
	newBenchRunner = func() *bench.Runner {
		return &bench.Runner{Measure: func(func(*testing.B)) testing.BenchmarkResult {
			return testing.BenchmarkResult{N: 100, T: 100 * 250 * time.Nanosecond}
		}}
	}
	t.Cleanup(func() { newBenchRunner = orig })
}

func TestBench(t *testing.T) {
	stubBenchRunner(t)

	out, err := execute(t, "bench", "--filter", "^U64")
	require.NoError(t, err)
	assert.Contains(t, out, "BenchmarkU64Arithmetic10Native-")
	assert.Contains(t, out, "BenchmarkU64Arithmetic50Native-")
	assert.NotContains(t, out, "F32")
	assert.Contains(t, out, "250.00 ns/op")
}

func TestBenchBaseline(t *testing.T) {
	stubBenchRunner(t)

	path := filepath.Join(t.TempDir(), "wagon.txt")
	baseline := "BenchmarkU64Arithmetic10Interpreted-8\t100000\t25000 ns/op\n"
	require.NoError(t, os.WriteFile(path, []byte(baseline), 0o644))

	out, err := execute(t, "bench", "--baseline", path)
	require.NoError(t, err)
	assert.Contains(t, out, "slowdown")
	assert.Contains(t, out, "25,000.0")
	assert.Contains(t, out, "100.0x")
}

func TestBenchErrors(t *testing.T) {
	stubBenchRunner(t)

	_, err := execute(t, "bench", "--filter", "Nothing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "bench", "--baseline", "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open baseline")
}

func TestCPU(t *testing.T) {
	out, err := execute(t, "cpu")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH:")
	assert.Contains(t, out, "Fused multiply-add:")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
}
