// File: cmd/syncpipe/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/momentics/hioload-sync/internal/cli"
)

const (
	cmdName = "syncpipe"

	shortDesc = "Drive producer/consumer pipelines built on syncq."
	longDesc  = `syncpipe runs in-process pipelines over the syncq primitives.

fanout   producers and consumers share one blocking queue and shut down by
         stop markers (drain, urgent) or by stopping the queue.
pingpong an I/O stage and a worker stage pass a single pooled buffer back
         and forth through a pair of blocking cells.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		stop()
		os.Exit(1)
	}
}
