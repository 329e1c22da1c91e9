// Command thanksctl is the operator tool for the thanks service: schema
// migrations, thanks log queries and access token minting.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wikia/thanksmetoo/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(config.Load).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
