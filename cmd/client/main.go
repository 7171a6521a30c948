package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"BinViewer/internal/cli/commands"
	"BinViewer/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		defer func() { _ = logger.Sync() }()
		commands.Logger = logger.Sugar()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	cancel()
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("BinViewer CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
