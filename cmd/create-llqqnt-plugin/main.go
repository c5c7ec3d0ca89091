// @MX:ANCHOR: [AUTO] main is the only entry point of the create-llqqnt-plugin binary; any error exits with code 1.
// @MX:REASON: [AUTO] delegates all work to cli.Execute
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
