package kernel

import (
	"os"
	"strings"
)

// NoParallelEnvVar disables worker fan-out in the Parallel batch helpers.
const NoParallelEnvVar = "NUMKERNEL_NO_PARALLEL"

// NoParallel reports whether NUMKERNEL_NO_PARALLEL is set to a true value.
// Empty, "0" and "false" leave parallelism on.
func NoParallel() bool {
	v := strings.TrimSpace(os.Getenv(NoParallelEnvVar))
	switch strings.ToLower(v) {
	case "", "0", "false":
		return false
	}
	return true
}
