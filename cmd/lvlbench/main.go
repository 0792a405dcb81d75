// SPDX-License-Identifier: MIT

// Command lvlbench benchmarks the instrumented sorting algorithms over a
// sweep of input sizes and prints one report per size.
//
//	lvlbench run --config bench.toml --algorithm merge --sizes 1000,2000,4000
//	lvlbench run --algorithm quick --instrument --input string --log-file bench.log
//	lvlbench list
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
