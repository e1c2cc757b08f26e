package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tartampluch/go-assist/internal/cli"
	"github.com/tartampluch/go-assist/internal/config"
)

// main delegates to runMain so deferred cleanup runs before the process
// terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain wires signal handling into the command context and maps the
// outcome to an exit code.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.RootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}
