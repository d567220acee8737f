// Command numkernel runs, checks and benchmarks the fixture kernels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ajroetker/go-numkernel/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
