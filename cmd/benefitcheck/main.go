package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"benefitcheck/internal/cli"
	"benefitcheck/internal/eligibility"
	"benefitcheck/internal/platform/config"
	"benefitcheck/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitUsage)
	}

	// Logs go to stderr so stdout carries only the verdict.
	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, "text")
	service := eligibility.NewService(eligibility.WithLogger(log))

	code := cli.Execute(ctx, cli.NewRootCmd(service, log), os.Args[1:])
	stop()
	os.Exit(code)
}
