// Command sweep advances a counter across a 3-D grid of 3-D blocks and
// prints how many of the counter values are divisible by two, three and five.
//
// Usage:
//
//	sweep                          # reference run: 1000x100x100 grid of 10x10x10 blocks
//	sweep -workers 8               # same tallies, swept on 8 goroutines
//	sweep -grid-z 1 -grid-y 1 -grid-x 1 -block-x 30
//	sweep -closed-form -format html
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
