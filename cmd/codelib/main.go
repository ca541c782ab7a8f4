// Command codelib exercises the codelib packages from the command line.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nrtyler/codelib/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command tree and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		log.Configure(log.Config{Output: stderr})
		logger := log.WithComponent("cli")
		logger.Error().Err(err).Msg("load configuration")
		return 1
	}

	log.Configure(log.Config{Level: cfg.LogLevel, Output: stderr})
	root := newRootCmd(cfg, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		logger := log.WithComponent("cli")
		logger.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
