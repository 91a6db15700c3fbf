package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"hwcheck/internal/check"
	"hwcheck/internal/config"
	"hwcheck/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		for field, msg := range errs {
			log.Printf("config: %s: %s", field, msg)
		}
		log.Fatal("FATAL: invalid configuration")
	}

	appLog := logger.New(cfg)
	runID := uuid.New()

	appLog.Info("hwcheck: starting...",
		"run_id", runID,
		"disk_path", cfg.DiskPath,
		"probe_addr", cfg.ProbeAddr,
		"allowed_os", cfg.AllowedOS,
	)

	results := check.NewDefaultSuite(cfg, appLog).Run(ctx)
	for _, r := range results {
		fmt.Println(r)
	}

	sum := check.Summarize(results)
	appLog.Info("hwcheck: finished",
		"run_id", runID,
		"passed", sum.Passed,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
	)

	if !sum.OK() || ctx.Err() != nil {
		stop()
		os.Exit(1)
	}
}
